// Package service implements the trading aggregate: it owns the catalog,
// order registry, trade log and portfolio, and serializes every mutation
// behind one lock.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/efreitasn/tradingsdk/internal/catalog"
	"github.com/efreitasn/tradingsdk/internal/engine"
	"github.com/efreitasn/tradingsdk/internal/store"
)

// TradingService is the process-wide trading state. PlaceOrder and
// ListPortfolio hold the write lock; other queries share the read lock.
type TradingService struct {
	mu         sync.RWMutex
	catalog    *catalog.Catalog
	executor   *engine.Executor
	portfolio  *engine.Portfolio
	orderStore *store.OrderStore
	tradeStore *store.TradeStore
	logger     *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewTradingService creates a TradingService over the given catalog and
// stores. A nil logger falls back to slog.Default().
func NewTradingService(
	cat *catalog.Catalog,
	orderStore *store.OrderStore,
	tradeStore *store.TradeStore,
	logger *slog.Logger,
) *TradingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TradingService{
		catalog:    cat,
		executor:   engine.NewExecutor(cat),
		portfolio:  engine.NewPortfolio(),
		orderStore: orderStore,
		tradeStore: tradeStore,
		logger:     logger,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}
