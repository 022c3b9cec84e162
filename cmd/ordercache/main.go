package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cryptonstudio/crypton-order-cache/ordercache"
)

func main() {
	var ordersCount, securitiesCount, companiesCount, usersCount int
	var lazy, strict, matchLog bool
	flag.IntVar(&ordersCount, "i", 1_000_000, "Input orders count")
	flag.IntVar(&securitiesCount, "s", 16, "Securities count")
	flag.IntVar(&companiesCount, "c", 8, "Companies count")
	flag.IntVar(&usersCount, "u", 64, "Users count")
	flag.BoolVar(&lazy, "lazy", false, "Match lazily at query time instead of at insertion")
	flag.BoolVar(&strict, "strict", false, "Enable strict validation")
	flag.BoolVar(&matchLog, "log", false, "Enable the match event log")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := ordercache.DefaultConfig()
	cfg.EagerMatch = !lazy
	cfg.StrictValidation = strict
	cfg.EnableMatchLog = matchLog

	handler := NewMatcher(logger)
	cache := ordercache.NewCache(handler, cfg)

	logger.Info("prepare input",
		zap.Int("orders", ordersCount),
		zap.Int("securities", securitiesCount),
		zap.Int("companies", companiesCount),
	)
	orders := generateInput(ordersCount, securitiesCount, companiesCount, usersCount)

	logger.Info("start execution")

	start := time.Now()
	for _, order := range orders {
		if err := cache.AddOrder(order); err != nil {
			logger.Error("failed to add order", zap.String("order_id", order.ID()), zap.Error(err))
		}
	}
	addElapsed := time.Since(start)

	start = time.Now()
	for s := 1; s <= securitiesCount; s++ {
		secID := securityID(s)
		size, err := cache.MatchingSizeForSecurity(secID)
		if err != nil {
			logger.Error("failed to query matching size", zap.String("security_id", secID), zap.Error(err))
			continue
		}
		logger.Info("matching size", zap.String("security_id", secID), zap.String("lots", size.String()))
	}
	queryElapsed := time.Since(start)

	// Sweep half of the users out of the book
	start = time.Now()
	for u := 1; u <= usersCount/2; u++ {
		if err := cache.CancelOrdersForUser(userID(u)); err != nil {
			logger.Error("failed to cancel user orders", zap.Error(err))
		}
	}
	cancelElapsed := time.Since(start)

	logger.Info("done",
		zap.Int("orders", ordersCount),
		zap.Int("remaining", cache.Size()),
		zap.Uint64("trades", handler.Trades()),
		zap.Duration("add", addElapsed),
		zap.Duration("query", queryElapsed),
		zap.Duration("cancel", cancelElapsed),
		zap.String("add_rate", fmt.Sprintf("%.0f orders/s", float64(ordersCount)/addElapsed.Seconds())),
	)
}

func generateInput(count, securities, companies, users int) []ordercache.Order {
	orders := make([]ordercache.Order, 0, count)
	for i := 0; i < count; i++ {
		side := ordercache.OrderSideBuy
		if rand.Intn(2) == 0 {
			side = ordercache.OrderSideSell
		}
		orders = append(orders, ordercache.NewOrder(
			"Ord"+strconv.Itoa(i+1),
			securityID(rand.Intn(securities)+1),
			side,
			ordercache.NewUint(uint64(rand.Intn(10_000)+1)),
			userID(rand.Intn(users)+1),
			"Company"+strconv.Itoa(rand.Intn(companies)+1),
		))
	}
	return orders
}

func securityID(n int) string {
	return "SecId" + strconv.Itoa(n)
}

func userID(n int) string {
	return "User" + strconv.Itoa(n)
}
