package main

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/cryptonstudio/crypton-order-cache/ordercache"
)

var _ ordercache.Handler = &Matcher{}

// Matcher counts cache events and logs trades at debug level.
type Matcher struct {
	logger *zap.Logger

	added   atomic.Uint64
	deleted atomic.Uint64
	trades  atomic.Uint64
}

// NewMatcher creates new Matcher instance.
func NewMatcher(logger *zap.Logger) *Matcher {
	return &Matcher{logger: logger}
}

func (m *Matcher) OnAddOrder(order *ordercache.Order) {
	m.added.Add(1)
}

func (m *Matcher) OnDeleteOrder(order *ordercache.Order) {
	m.deleted.Add(1)
}

func (m *Matcher) OnExecuteTrade(buyOrder, sellOrder *ordercache.Order, quantity ordercache.Uint) {
	m.trades.Add(1)
	if ce := m.logger.Check(zap.DebugLevel, "trade"); ce != nil {
		ce.Write(
			zap.String("buy_order_id", buyOrder.ID()),
			zap.String("sell_order_id", sellOrder.ID()),
			zap.String("security_id", buyOrder.SecurityID()),
			zap.String("quantity", quantity.String()),
		)
	}
}

// Added returns the number of orders accepted by the cache.
func (m *Matcher) Added() uint64 {
	return m.added.Load()
}

// Deleted returns the number of orders cancelled from the cache.
func (m *Matcher) Deleted() uint64 {
	return m.deleted.Load()
}

// Trades returns the number of executed pairings.
func (m *Matcher) Trades() uint64 {
	return m.trades.Load()
}
