package ordercache

import (
	"errors"
)

// Errors used by the package.
var (
	ErrOrderDuplicate       = errors.New("order is duplicated")
	ErrOrderNotFound        = errors.New("order is not found")
	ErrUserNotFound         = errors.New("user is not found")
	ErrSecurityNotFound     = errors.New("security is not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderSecurity = errors.New("invalid order security id")
	ErrInvalidOrderUser     = errors.New("invalid order user id")
	ErrInvalidOrderCompany  = errors.New("invalid order company id")
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")
)
