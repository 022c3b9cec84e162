package ordercache

import (
	"sync"

	"github.com/tidwall/hashmap"

	"github.com/cryptonstudio/crypton-order-cache/types/list"
	"github.com/cryptonstudio/crypton-order-cache/types/set"
)

// Cache is an in-memory store of working orders modelling a call auction:
// orders are paired by volume only, price plays no role. The cache keeps
// every order in four indexes (by id, by user, by security and in the
// per-security side queue) so lookups and cancellations are O(1), and it
// memoizes the total matched quantity per security so matching size queries
// are O(1) reads in eager mode.
//
// The cache is safe for concurrent use. Writers serialize on the global
// orders lock, matchers additionally coordinate through the per-order locks
// so parallel matching in lazy mode only needs the global lock shared.
type Cache struct {
	handler Handler
	cfg     Config

	// Allocator used by the cache
	allocator *Allocator

	// Orders storage and indexes, guarded by mu.
	// The list keeps the orders in insertion order with O(1) unlink, the
	// maps give O(1) access by id, by user, by security, and to the
	// per-security per-side working queues.
	mu         sync.RWMutex
	orders     *list.List[*Order]
	byID       *hashmap.Map[string, *Order]
	byUser     *hashmap.Map[string, *set.Set[string]]
	bySecurity *hashmap.Map[string, *set.Set[string]]
	buys       *hashmap.Map[string, *list.List[*Order]]
	sells      *hashmap.Map[string, *list.List[*Order]]

	// Matched lots per security. Guarded by its own lock: lazy mode
	// matchers update it while holding the global lock only shared.
	matchedMu sync.RWMutex
	matched   *hashmap.Map[string, Uint]

	// Append-only match event log, recorded when enabled in config
	logMu    sync.Mutex
	matchLog *list.List[OrderFill]
}

// NewCache creates and returns new Cache instance.
func NewCache(handler Handler, cfg Config) *Cache {
	allocator := NewAllocator()
	return &Cache{
		handler:    handler,
		cfg:        cfg,
		allocator:  allocator,
		orders:     list.NewListPooled[*Order](&allocator.orderQueueElements),
		byID:       hashmap.New[string, *Order](defaultReservedOrderSlots),
		byUser:     hashmap.New[string, *set.Set[string]](defaultReservedIndexSlots),
		bySecurity: hashmap.New[string, *set.Set[string]](defaultReservedIndexSlots),
		buys:       hashmap.New[string, *list.List[*Order]](defaultReservedIndexSlots),
		sells:      hashmap.New[string, *list.List[*Order]](defaultReservedIndexSlots),
		matched:    hashmap.New[string, Uint](defaultReservedIndexSlots),
		matchLog:   list.NewList[OrderFill](),
	}
}

////////////////////////////////////////////////////////////////
// Cache getters
////////////////////////////////////////////////////////////////

// IsEmpty returns true if the cache has no orders.
func (c *Cache) IsEmpty() bool {
	return c.Size() == 0
}

// Size returns total amount of currently working orders.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.byID.Len()
}

// Exists returns true if an order with the given id is in the cache.
func (c *Cache) Exists(orderID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.byID.Get(orderID)
	return ok
}

// Order returns a snapshot copy of the order with given id.
func (c *Cache) Order(orderID string) (Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	order, ok := c.byID.Get(orderID)
	if !ok {
		return Order{}, false
	}
	return order.snapshot(), true
}

// AllOrders returns a snapshot of all orders in the cache in insertion order.
func (c *Cache) AllOrders() []Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	orders := make([]Order, 0, c.orders.Len())
	for e := c.orders.Front(); e != nil; e = e.Next() {
		orders = append(orders, e.Value.snapshot())
	}
	return orders
}

////////////////////////////////////////////////////////////////
// Matching size
////////////////////////////////////////////////////////////////

// MatchingSizeForSecurity returns the total quantity of lots matched between
// buyers and sellers of the given security.
//
// In eager mode the value is served straight from the match cache, O(1).
// In lazy mode the matcher is driven across every buy-side order of the
// security first, one goroutine per order when parallel matching is enabled.
//
// The value is historical: cancellations do not decrease it. An unknown
// security yields zero, or ErrSecurityNotFound with strict validation.
func (c *Cache) MatchingSizeForSecurity(securityID string) (Uint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cfg.StrictValidation {
		if _, ok := c.bySecurity.Get(securityID); !ok {
			return NewZeroUint(), ErrSecurityNotFound
		}
	}

	if !c.cfg.EagerMatch {
		c.matchSecurity(securityID)
	}

	return c.matchedQuantity(securityID), nil
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

// sideQueue returns the working queue of the given security and side.
func (c *Cache) sideQueue(securityID string, side OrderSide) (*list.List[*Order], bool) {
	if side == OrderSideBuy {
		return c.buys.Get(securityID)
	}
	return c.sells.Get(securityID)
}

// ensureSideQueue returns the working queue of the given security and side,
// creating it when absent. Caller must hold the orders lock exclusively.
func (c *Cache) ensureSideQueue(securityID string, side OrderSide) *list.List[*Order] {
	queues := c.sells
	if side == OrderSideBuy {
		queues = c.buys
	}
	queue, ok := queues.Get(securityID)
	if !ok {
		queue = list.NewListPooled[*Order](&c.allocator.orderQueueElements)
		queues.Set(securityID, queue)
	}
	return queue
}

// dropSideQueue removes the emptied working queue of the given security and
// side. Caller must hold the orders lock exclusively.
func (c *Cache) dropSideQueue(securityID string, side OrderSide) {
	if side == OrderSideBuy {
		c.buys.Delete(securityID)
		return
	}
	c.sells.Delete(securityID)
}

// matchedQuantity reads the cached matched quantity of the given security.
func (c *Cache) matchedQuantity(securityID string) Uint {
	c.matchedMu.RLock()
	defer c.matchedMu.RUnlock()

	quantity, _ := c.matched.Get(securityID)
	return quantity
}

// addMatched accumulates freshly matched lots into the match cache.
func (c *Cache) addMatched(securityID string, quantity Uint) {
	c.matchedMu.Lock()
	defer c.matchedMu.Unlock()

	total, _ := c.matched.Get(securityID)
	c.matched.Set(securityID, total.Add(quantity))
}
