package ordercache

import (
	"sync"

	"github.com/cryptonstudio/crypton-order-cache/types/set"
)

////////////////////////////////////////////////////////////////
// Adding new orders
////////////////////////////////////////////////////////////////

// AddOrder adds new order to the cache.
//
// The order is inserted into all indexes and, in eager mode, immediately
// driven through the matcher against the opposite side of its security.
// An order with a duplicate id never modifies the cache: the call is a
// silent no-op, or fails with ErrOrderDuplicate with strict validation.
func (c *Cache) AddOrder(order Order) error {
	// Validate order parameters
	if err := order.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Check duplicate
	if _, ok := c.byID.Get(order.id); ok {
		if c.cfg.StrictValidation {
			return ErrOrderDuplicate
		}
		return nil
	}

	// Create a new order
	newOrder := c.allocator.GetOrder()
	*newOrder = order
	if newOrder.mu == nil {
		newOrder.mu = &sync.RWMutex{}
	}

	// Store the order in the insertion-ordered list
	newOrder.queued = c.orders.PushBack(newOrder)

	// Store the indexes for fast access
	c.byID.Set(newOrder.id, newOrder)

	userOrders, ok := c.byUser.Get(newOrder.userID)
	if !ok {
		userOrders = set.New[string]()
		c.byUser.Set(newOrder.userID, userOrders)
	}
	userOrders.Add(newOrder.id)

	securityOrders, ok := c.bySecurity.Get(newOrder.securityID)
	if !ok {
		securityOrders = set.New[string]()
		c.bySecurity.Set(newOrder.securityID, securityOrders)
	}
	securityOrders.Add(newOrder.id)

	// Enqueue the order into the working queue of its security and side
	newOrder.sideQueued = c.ensureSideQueue(newOrder.securityID, newOrder.side).PushBack(newOrder)

	// Call the corresponding handler
	c.handler.OnAddOrder(newOrder)

	// Automatic order matching at insertion keeps matching size queries O(1).
	// The write lock already excludes every other matcher here so the
	// per-order locks are not needed.
	if c.cfg.EagerMatch {
		c.matchOrder(newOrder, false)
	}

	return nil
}

////////////////////////////////////////////////////////////////
// Cancelling orders
////////////////////////////////////////////////////////////////

// CancelOrder cancels the order with the given id.
//
// The order is removed from all indexes and destroyed. Matches the order has
// already participated in are historical events and stay in the match cache.
// An unknown id is a silent no-op, or ErrOrderNotFound with strict validation.
func (c *Cache) CancelOrder(orderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, ok := c.byID.Get(orderID)
	if !ok {
		if c.cfg.StrictValidation {
			return ErrOrderNotFound
		}
		return nil
	}

	c.cancelSingleOrder(order)
	return nil
}

// CancelOrdersForUser cancels all orders of the given user.
// An unknown user is a silent no-op, or ErrUserNotFound with strict validation.
func (c *Cache) CancelOrdersForUser(userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	userOrders, ok := c.byUser.Get(userID)
	if !ok {
		if c.cfg.StrictValidation {
			return ErrUserNotFound
		}
		return nil
	}

	// Snapshot the ids: cancelling mutates the index entry being iterated
	c.cancelBatch(userOrders.Keys(), NewZeroUint())
	return nil
}

// CancelOrdersForSecurityWithMinQty cancels all orders of the given security
// whose total quantity is at least minQty. The threshold compares against the
// original order quantity, not the remaining working quantity. An unknown
// security is a silent no-op, or ErrSecurityNotFound with strict validation.
func (c *Cache) CancelOrdersForSecurityWithMinQty(securityID string, minQty Uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	securityOrders, ok := c.bySecurity.Get(securityID)
	if !ok {
		if c.cfg.StrictValidation {
			return ErrSecurityNotFound
		}
		return nil
	}

	c.cancelBatch(securityOrders.Keys(), minQty)
	return nil
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

// cancelSingleOrder removes the order from all indexes and destroys it.
// Caller must hold the orders lock exclusively. Since every matcher runs
// under at least the shared orders lock, no matcher can be holding the
// order lock at this point.
func (c *Cache) cancelSingleOrder(order *Order) {
	// Remove from the user index, pruning the emptied entry
	if userOrders, ok := c.byUser.Get(order.userID); ok {
		userOrders.Remove(order.id)
		if userOrders.Len() == 0 {
			c.byUser.Delete(order.userID)
		}
	}

	// Remove from the security index, pruning the emptied entry
	if securityOrders, ok := c.bySecurity.Get(order.securityID); ok {
		securityOrders.Remove(order.id)
		if securityOrders.Len() == 0 {
			c.bySecurity.Delete(order.securityID)
		}
	}

	// Dequeue from the working queue of its security and side
	if queue, ok := c.sideQueue(order.securityID, order.side); ok {
		queue.Remove(order.sideQueued)
		if queue.Len() == 0 {
			c.dropSideQueue(order.securityID, order.side)
		}
	}
	order.sideQueued = nil

	// Remove the main order index entry
	c.byID.Delete(order.id)

	// Unlink the order record itself
	c.orders.Remove(order.queued)
	order.queued = nil

	// Call the corresponding handler
	c.handler.OnDeleteOrder(order)

	// Release the order
	c.allocator.PutOrder(order)
}

// cancelBatch cancels every order from ids whose total quantity passes the
// minQty threshold. A zero threshold cancels unconditionally.
func (c *Cache) cancelBatch(ids []string, minQty Uint) {
	if c.cfg.ParallelCancellation && len(ids) > cancelChunkSize {
		for _, order := range c.eligibleForCancel(ids, minQty) {
			c.cancelSingleOrder(order)
		}
		return
	}

	for _, id := range ids {
		order, ok := c.byID.Get(id)
		if !ok {
			continue
		}
		if !minQty.IsZero() && order.quantity.LessThan(minQty) {
			continue
		}
		c.cancelSingleOrder(order)
	}
}

// eligibleForCancel resolves the batch ids and applies the minQty threshold
// in parallel chunks. Only reads happen here: the caller holds the orders
// lock exclusively so the indexes are quiescent, and the actual unlinking
// stays serial.
func (c *Cache) eligibleForCancel(ids []string, minQty Uint) []*Order {
	chunks := (len(ids) + cancelChunkSize - 1) / cancelChunkSize
	results := make([][]*Order, chunks)

	var wg sync.WaitGroup
	for i := 0; i < chunks; i++ {
		begin, end := i*cancelChunkSize, (i+1)*cancelChunkSize
		if end > len(ids) {
			end = len(ids)
		}

		wg.Add(1)
		go func(i int, ids []string) {
			defer wg.Done()

			eligible := make([]*Order, 0, len(ids))
			for _, id := range ids {
				order, ok := c.byID.Get(id)
				if !ok {
					continue
				}
				if !minQty.IsZero() && order.quantity.LessThan(minQty) {
					continue
				}
				eligible = append(eligible, order)
			}
			results[i] = eligible
		}(i, ids[begin:end])
	}
	wg.Wait()

	eligible := make([]*Order, 0, len(ids))
	for _, chunk := range results {
		eligible = append(eligible, chunk...)
	}
	return eligible
}
