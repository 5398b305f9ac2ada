package store

import (
	"sync"

	"github.com/efreitasn/tradingsdk/internal/domain"
)

// TradeStore is a thread-safe, append-only trade log in execution order,
// with a secondary index by symbol.
type TradeStore struct {
	mu       sync.RWMutex
	trades   []*domain.Trade
	bySymbol map[string][]*domain.Trade // symbol → trades (chronological)
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{
		trades:   make([]*domain.Trade, 0),
		bySymbol: make(map[string][]*domain.Trade),
	}
}

// Append adds a trade to the end of the log.
func (s *TradeStore) Append(t *domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *t
	s.trades = append(s.trades, &c)
	s.bySymbol[c.Symbol] = append(s.bySymbol[c.Symbol], &c)
}

// List returns all trades in execution order.
func (s *TradeStore) List() []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyTrades(s.trades)
}

// ListBySymbol returns the trades for one symbol in execution order.
// Returns an empty slice if no trades exist for the symbol.
func (s *TradeStore) ListBySymbol(symbol string) []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyTrades(s.bySymbol[symbol])
}

// Len returns the number of trades in the log.
func (s *TradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.trades)
}

// copyTrades returns value copies so callers cannot mutate the log.
func copyTrades(trades []*domain.Trade) []domain.Trade {
	result := make([]domain.Trade, len(trades))
	for i, t := range trades {
		result[i] = *t
	}
	return result
}
