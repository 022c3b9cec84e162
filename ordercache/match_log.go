package ordercache

////////////////////////////////////////////////////////////////
// Match event log
////////////////////////////////////////////////////////////////

// appendMatch records a pairing in the append-only match log.
// Safe under the shared orders lock: lazy mode matchers append concurrently.
func (c *Cache) appendMatch(buyOrder, sellOrder *Order, quantity Uint) {
	c.logMu.Lock()
	defer c.logMu.Unlock()

	c.matchLog.PushBack(OrderFill{
		buyOrderID:  buyOrder.id,
		sellOrderID: sellOrder.id,
		securityID:  buyOrder.securityID,
		quantity:    quantity,
	})
}

// AllOrderMatches returns a snapshot of all recorded pairings in pairing
// order. Cancellations never remove entries: the log is a history of match
// events, not of live orders. Empty unless the match log is enabled.
func (c *Cache) AllOrderMatches() []OrderFill {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.logMu.Lock()
	defer c.logMu.Unlock()

	fills := make([]OrderFill, 0, c.matchLog.Len())
	for e := c.matchLog.Front(); e != nil; e = e.Next() {
		fills = append(fills, e.Value)
	}
	return fills
}

// OrderMatchesForSecurity returns a snapshot of recorded pairings made on
// the given security, in pairing order.
func (c *Cache) OrderMatchesForSecurity(securityID string) []OrderFill {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.logMu.Lock()
	defer c.logMu.Unlock()

	fills := make([]OrderFill, 0)
	for e := c.matchLog.Front(); e != nil; e = e.Next() {
		if e.Value.securityID == securityID {
			fills = append(fills, e.Value)
		}
	}
	return fills
}
