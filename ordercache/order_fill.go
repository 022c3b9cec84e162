package ordercache

import "fmt"

// OrderFill is a single match event: a pairing of one buy and one sell order
// for some quantity of lots. The record carries the security ID so match log
// queries do not depend on the referenced orders still being in the cache.
type OrderFill struct {
	buyOrderID  string
	sellOrderID string
	securityID  string
	quantity    Uint
}

// BuyOrderID returns the ID of the buy side order of the pairing.
func (f OrderFill) BuyOrderID() string {
	return f.buyOrderID
}

// SellOrderID returns the ID of the sell side order of the pairing.
func (f OrderFill) SellOrderID() string {
	return f.sellOrderID
}

// SecurityID returns the security the pairing was made on.
func (f OrderFill) SecurityID() string {
	return f.securityID
}

// Quantity returns the paired quantity of lots.
func (f OrderFill) Quantity() Uint {
	return f.quantity
}

// String returns the fill in a human readable form.
func (f OrderFill) String() string {
	return fmt.Sprintf("order fill{buy: %s, sell: %s, security: %s, qty: %s}",
		f.buyOrderID, f.sellOrderID, f.securityID, f.quantity)
}
