package service

import (
	"fmt"

	"github.com/efreitasn/tradingsdk/internal/domain"
)

// ListTrades returns the trade log in execution order. A non-empty symbol
// restricts the result to that instrument; unknown symbols are an error.
func (s *TradingService) ListTrades(symbol string) ([]domain.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if symbol == "" {
		return s.tradeStore.List(), nil
	}
	if _, ok := s.catalog.Lookup(symbol); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
	}
	return s.tradeStore.ListBySymbol(symbol), nil
}

// ListPortfolio marks every holding to its instrument's last traded price
// and returns the holdings ordered by symbol. A holding whose instrument is
// missing from the catalog keeps its previous mark.
func (s *TradingService) ListPortfolio() []domain.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, symbol := range s.portfolio.Symbols() {
		if inst, ok := s.catalog.Lookup(symbol); ok {
			s.portfolio.Mark(symbol, inst.LastTradedPrice)
		}
	}
	return s.portfolio.Holdings()
}

// ListInstruments returns the catalog in seed order.
func (s *TradingService) ListInstruments() []domain.Instrument {
	return s.catalog.List()
}
