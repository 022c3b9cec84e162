package ordercache

import (
	"sync"

	"github.com/cryptonstudio/crypton-order-cache/types/list"
)

// Allocator is an object encapsulating all used objects allocation using sync.Pool internally.
type Allocator struct {

	// Orders
	orders sync.Pool

	// Pool used by containers
	orderQueueElements sync.Pool // used by list.List[*Order]
}

// NewAllocator creates and returns new Allocator instance.
func NewAllocator() *Allocator {
	a := new(Allocator)
	// Orders
	a.orders = sync.Pool{New: func() any {
		return new(Order)
	}}
	// Pool used by containers
	a.orderQueueElements = sync.Pool{New: func() any {
		return new(list.Element[*Order])
	}}
	return a
}

////////////////////////////////////////////////////////////////
// Orders
////////////////////////////////////////////////////////////////

// GetOrder allocates Order instance.
func (a *Allocator) GetOrder() *Order {
	// Get from the pool
	return a.orders.Get().(*Order)
}

// PutOrder releases Order instance.
func (a *Allocator) PutOrder(order *Order) {
	// Clean up the instance before releasing
	*order = Order{}
	// Put back to the pool
	a.orders.Put(order)
}
