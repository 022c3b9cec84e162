package ordercache_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	ordercache "github.com/cryptonstudio/crypton-order-cache/ordercache"
)

func TestMatchLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newLogOrders := func() []ordercache.Order {
		return []ordercache.Order{
			newOrder("1", "SecId1", "Buy", 10000, "User1", "CompanyA"),
			newOrder("2", "SecId1", "Sell", 2000, "User2", "CompanyB"),
			newOrder("3", "SecId1", "Sell", 1500, "User3", "CompanyC"),
			newOrder("4", "SecId1", "Sell", 2500, "User4", "CompanyD"),
			newOrder("5", "SecId1", "Sell", 4000, "User5", "CompanyE"),
		}
	}

	t.Run("disabled by default", func(t *testing.T) {
		cache := ordercache.NewCache(setupHandler(ctrl), ordercache.DefaultConfig())
		addAll(t, cache, newLogOrders())
		require.Empty(t, cache.AllOrderMatches())
	})

	t.Run("records every pairing in order", func(t *testing.T) {
		cfg := ordercache.DefaultConfig()
		cfg.EnableMatchLog = true
		cache := ordercache.NewCache(setupHandler(ctrl), cfg)
		addAll(t, cache, newLogOrders())

		fills := cache.AllOrderMatches()
		require.Len(t, fills, 4)

		wantQuantities := []uint64{2000, 1500, 2500, 4000}
		for i, fill := range fills {
			require.Equal(t, "1", fill.BuyOrderID())
			require.Equal(t, newLogOrders()[i+1].ID(), fill.SellOrderID())
			require.Equal(t, "SecId1", fill.SecurityID())
			require.True(t, fill.Quantity().Equals64(wantQuantities[i]), "fill %d", i)
		}
	})

	t.Run("per security filtering", func(t *testing.T) {
		cfg := ordercache.DefaultConfig()
		cfg.EnableMatchLog = true
		cache := ordercache.NewCache(setupHandler(ctrl), cfg)

		addAll(t, cache, []ordercache.Order{
			newOrder("1", "SecId1", "Buy", 500, "User1", "CompanyA"),
			newOrder("2", "SecId1", "Sell", 500, "User2", "CompanyB"),
			newOrder("3", "SecId2", "Buy", 300, "User3", "CompanyA"),
			newOrder("4", "SecId2", "Sell", 200, "User4", "CompanyB"),
		})

		require.Len(t, cache.AllOrderMatches(), 2)

		fills := cache.OrderMatchesForSecurity("SecId2")
		require.Len(t, fills, 1)
		require.Equal(t, "3", fills[0].BuyOrderID())
		require.Equal(t, "4", fills[0].SellOrderID())
		require.True(t, fills[0].Quantity().Equals64(200))

		require.Empty(t, cache.OrderMatchesForSecurity("SecId3"))
	})

	t.Run("entries survive cancellation", func(t *testing.T) {
		cfg := ordercache.DefaultConfig()
		cfg.EnableMatchLog = true
		cache := ordercache.NewCache(setupHandler(ctrl), cfg)

		addAll(t, cache, []ordercache.Order{
			newOrder("1", "SecId1", "Buy", 500, "User1", "CompanyA"),
			newOrder("2", "SecId1", "Sell", 500, "User2", "CompanyB"),
		})
		require.NoError(t, cache.CancelOrder("1"))
		require.NoError(t, cache.CancelOrder("2"))

		fills := cache.OrderMatchesForSecurity("SecId1")
		require.Len(t, fills, 1)
		require.True(t, fills[0].Quantity().Equals64(500))
	})

	t.Run("lazy mode records the same pairings", func(t *testing.T) {
		cfg := ordercache.DefaultConfig()
		cfg.EagerMatch = false
		cfg.ParallelMatching = false
		cfg.EnableMatchLog = true
		cache := ordercache.NewCache(setupHandler(ctrl), cfg)
		addAll(t, cache, newLogOrders())

		require.Empty(t, cache.AllOrderMatches())

		requireMatchingSize(t, cache, "SecId1", 10000)

		fills := cache.AllOrderMatches()
		require.Len(t, fills, 4)
		for _, fill := range fills {
			require.Equal(t, "1", fill.BuyOrderID())
		}
	})
}
