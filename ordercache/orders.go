package ordercache

import "sync"

// NewOrder creates new order working for its full quantity.
func NewOrder(
	orderID string,
	securityID string,
	side OrderSide,
	quantity Uint,
	userID string,
	companyID string,
) Order {
	return Order{
		id:              orderID,
		securityID:      securityID,
		userID:          userID,
		companyID:       companyID,
		side:            side,
		quantity:        quantity,
		workingQuantity: quantity,
		mu:              &sync.RWMutex{},
	}
}
