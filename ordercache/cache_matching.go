package ordercache

import (
	"sync"
)

////////////////////////////////////////////////////////////////
// Matching orders
////////////////////////////////////////////////////////////////

// matchOrder walks the opposite-side working queue of the order's security
// in insertion order, pairing volume against every eligible counterparty
// until the order is filled or candidates run out. This is the O(n)
// "unsorted greedy" pair matching: no reordering by size, user or company,
// the first eligible counterparty wins.
//
// A counterparty is eligible when it still has working lots and belongs to
// a different company: same-company orders never trade with each other.
//
// With lockOrders the matcher takes the per-order locks exclusively, first
// the subject and then one candidate at a time. Lazy mode drives subjects
// only from the buy side so the pairwise (buy, sell) acquisition order is
// globally consistent and deadlock-free. Eager mode runs under the
// exclusive orders lock and skips the per-order locks.
//
// Returns the freshly matched quantity, already accumulated into the match
// cache. Repeated invocation on a filled order yields zero.
func (c *Cache) matchOrder(order *Order, lockOrders bool) Uint {
	if lockOrders {
		order.mu.Lock()
		defer order.mu.Unlock()
	}

	// Already filled: nothing to pair
	if order.workingQuantity.IsZero() {
		return NewZeroUint()
	}

	// Counterparties of the order: the working queue of the opposite side
	queue, ok := c.sideQueue(order.securityID, order.side.Opposite())
	if !ok || queue.Len() == 0 {
		return NewZeroUint()
	}

	matched := NewZeroUint()

	it := queue.Iterator()
	for it.Next() {
		counterparty := it.Current().Value

		if lockOrders {
			counterparty.mu.Lock()
		}

		// Skip exhausted candidates and enforce the same-company exclusion
		if counterparty.workingQuantity.IsZero() || counterparty.companyID == order.companyID {
			if lockOrders {
				counterparty.mu.Unlock()
			}
			continue
		}

		// Pair the tradable quantity between the two orders
		quantity := Min(order.workingQuantity, counterparty.workingQuantity)
		order.fillLots(quantity)
		counterparty.fillLots(quantity)

		if lockOrders {
			counterparty.mu.Unlock()
		}

		matched = matched.Add(quantity)

		// Canonical orientation: the buy order goes first
		buyOrder, sellOrder := order, counterparty
		if order.IsSell() {
			buyOrder, sellOrder = counterparty, order
		}

		// Call the corresponding handler
		c.handler.OnExecuteTrade(buyOrder, sellOrder, quantity)

		if c.cfg.EnableMatchLog {
			c.appendMatch(buyOrder, sellOrder, quantity)
		}

		// The order is filled: all work is done
		if order.workingQuantity.IsZero() {
			break
		}
	}

	if !matched.IsZero() {
		c.addMatched(order.securityID, matched)
	}
	return matched
}

// matchSecurity drives the matcher across every buy-side order of the given
// security. Used in lazy mode by matching size queries. Caller must hold the
// orders lock at least shared; the per-order locks serialize all working
// quantity mutation between parallel matchers.
func (c *Cache) matchSecurity(securityID string) {
	queue, ok := c.sideQueue(securityID, OrderSideBuy)
	if !ok {
		return
	}

	if !c.cfg.ParallelMatching {
		for e := queue.Front(); e != nil; e = e.Next() {
			c.matchOrder(e.Value, true)
		}
		return
	}

	// One matching task per buy-side order
	var wg sync.WaitGroup
	for e := queue.Front(); e != nil; e = e.Next() {
		order := e.Value
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.matchOrder(order, true)
		}()
	}
	wg.Wait()
}
