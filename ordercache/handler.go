package ordercache

//go:generate mockgen -destination=mocks/handler.go -package=mockordercache . Handler

// Handler observes order lifecycle and matching events of a Cache.
// Handlers are invoked from inside the cache under its locks: they must not
// call back into the cache or into the synchronized accessors of the orders
// they receive.
type Handler interface {

	// Orders handlers
	OnAddOrder(order *Order)
	OnDeleteOrder(order *Order)

	// Matching handler
	// NOTE: Called AFTER the pairing is applied to both orders, always with
	// the buy order first regardless of which of them triggered the match.
	OnExecuteTrade(buyOrder *Order, sellOrder *Order, quantity Uint)
}
