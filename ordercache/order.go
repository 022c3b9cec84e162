package ordercache

import (
	"fmt"
	"sync"

	"github.com/cryptonstudio/crypton-order-cache/types/list"
)

// Order contains information about an order.
// An order is an instruction to buy or sell a stated amount of lots of a
// single security, attributed to the user who placed it and the company the
// user trades for. Orders carry no price: the cache models a call auction
// where only volumes are paired.
//
// The descriptor part (id, security, side, quantity, user, company) is fixed
// at construction. Only the working quantity changes while the order lives
// in the cache, under the per-order lock or, in eager matching, under the
// exclusive orders lock of the cache.
type Order struct {
	id         string
	securityID string
	userID     string
	companyID  string
	side       OrderSide

	// Total lot count, fixed at construction.
	quantity Uint

	// Remaining unfilled lot count, quantity at construction,
	// decreases monotonically while matching consumes the order.
	workingQuantity Uint

	// Per-order lock shared between the cache copy and snapshots.
	// Matchers take it exclusively around working quantity mutation so
	// concurrent matchers may fill different orders in parallel.
	mu *sync.RWMutex

	// Position in the cache-wide insertion-ordered order list.
	queued *list.Element[*Order]

	// Position in the per-security side queue the order is working in.
	sideQueued *list.Element[*Order]
}

////////////////////////////////////////////////////////////////

// ID returns the order ID.
func (o *Order) ID() string {
	return o.id
}

// SecurityID returns the security ID of the order.
func (o *Order) SecurityID() string {
	return o.securityID
}

// UserID returns the ID of the user who owns the order.
func (o *Order) UserID() string {
	return o.userID
}

// CompanyID returns the ID of the company the owning user trades for.
func (o *Order) CompanyID() string {
	return o.companyID
}

////////////////////////////////////////////////////////////////

// Side returns the market side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsBuy returns true if buy order.
func (o *Order) IsBuy() bool {
	return o.side == OrderSideBuy
}

// IsSell returns true if sell order.
func (o *Order) IsSell() bool {
	return o.side == OrderSideSell
}

////////////////////////////////////////////////////////////////

// Quantity returns the total order quantity.
func (o *Order) Quantity() Uint {
	return o.quantity
}

// WorkingQuantity returns the remaining unfilled quantity.
func (o *Order) WorkingQuantity() Uint {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.workingQuantity
}

// FilledQuantity returns the executed quantity.
func (o *Order) FilledQuantity() Uint {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.quantity.Sub(o.workingQuantity)
}

// IsFilled returns true if the order is completely filled.
func (o *Order) IsFilled() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.workingQuantity.IsZero()
}

////////////////////////////////////////////////////////////////

// Fill subtracts the given quantity of working lots, saturating at zero.
// Never fails: filling more than is working leaves the order fully filled.
func (o *Order) Fill(quantity Uint) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.fillLots(quantity)
}

// Unfill returns the given quantity of lots to the working amount,
// saturating at the total order quantity.
func (o *Order) Unfill(quantity Uint) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.unfillLots(quantity)
}

// ResetFills restores the full working quantity of the order.
// Intended for tests and replay tooling.
func (o *Order) ResetFills() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.workingQuantity = o.quantity
}

// fillLots subtracts working lots without taking the order lock.
// The matcher calls it while already holding either this lock or the
// cache's orders lock exclusively.
func (o *Order) fillLots(quantity Uint) {
	if o.workingQuantity.LessThanOrEqualTo(quantity) {
		o.workingQuantity = NewZeroUint()
		return
	}
	o.workingQuantity = o.workingQuantity.Sub(quantity)
}

// unfillLots adds working lots without taking the order lock.
func (o *Order) unfillLots(quantity Uint) {
	o.workingQuantity = Min(o.workingQuantity.Add(quantity), o.quantity)
}

////////////////////////////////////////////////////////////////

// Validate returns error if the order fails to pass validation so can be used safely.
func (o *Order) Validate() error {
	switch {
	case o.id == "":
		return ErrInvalidOrderID
	case o.securityID == "":
		return ErrInvalidOrderSecurity
	case o.userID == "":
		return ErrInvalidOrderUser
	case o.companyID == "":
		return ErrInvalidOrderCompany
	case o.quantity.IsZero():
		return ErrInvalidOrderQuantity
	case o.workingQuantity.GreaterThan(o.quantity):
		return ErrInvalidOrderQuantity
	}
	return nil
}

// String returns the order in a human readable form.
func (o *Order) String() string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return fmt.Sprintf("order{id: %s, security: %s, side: %s, qty: %s, working: %s, user: %s, company: %s}",
		o.id, o.securityID, o.side, o.quantity, o.workingQuantity, o.userID, o.companyID)
}

// snapshot returns a detached value copy of the order with a consistent
// working quantity. The copy shares the per-order lock pointer so its
// synchronized accessors work; its fields do not follow later changes of
// the live order.
func (o *Order) snapshot() Order {
	o.mu.RLock()
	c := *o
	o.mu.RUnlock()

	c.queued, c.sideQueued = nil, nil
	return c
}
