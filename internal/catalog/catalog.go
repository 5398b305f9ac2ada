// Package catalog holds the fixed set of tradable instruments and their
// reference prices. A Catalog never changes after construction, so it is
// safe for concurrent reads without locking.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/efreitasn/tradingsdk/internal/domain"
)

// Catalog maps symbols to instruments and remembers seed order.
type Catalog struct {
	bySymbol map[string]domain.Instrument
	ordered  []domain.Instrument
}

// New builds a catalog from the given instruments. It returns an error if
// any instrument is invalid or a symbol appears twice.
func New(instruments []domain.Instrument) (*Catalog, error) {
	c := &Catalog{
		bySymbol: make(map[string]domain.Instrument, len(instruments)),
		ordered:  make([]domain.Instrument, 0, len(instruments)),
	}
	for i, inst := range instruments {
		if err := inst.Validate(); err != nil {
			return nil, fmt.Errorf("instrument %d: %w", i, err)
		}
		if _, dup := c.bySymbol[inst.Symbol]; dup {
			return nil, fmt.Errorf("instrument %d: duplicate symbol %q", i, inst.Symbol)
		}
		c.bySymbol[inst.Symbol] = inst
		c.ordered = append(c.ordered, inst)
	}
	return c, nil
}

// Default returns a catalog with the built-in seed instruments.
func Default() *Catalog {
	c, err := New(DefaultInstruments())
	if err != nil {
		panic(err) // seed data is static
	}
	return c
}

// DefaultInstruments returns the built-in seed set.
func DefaultInstruments() []domain.Instrument {
	return []domain.Instrument{
		{Symbol: "RELIANCE", Exchange: domain.ExchangeNSE, InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: decimal.RequireFromString("2450.50")},
		{Symbol: "TCS", Exchange: domain.ExchangeNSE, InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: decimal.RequireFromString("3580.75")},
		{Symbol: "INFY", Exchange: domain.ExchangeNSE, InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: decimal.RequireFromString("1450.30")},
		{Symbol: "HDFCBANK", Exchange: domain.ExchangeNSE, InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: decimal.RequireFromString("1620.80")},
		{Symbol: "TATASTEEL", Exchange: domain.ExchangeBSE, InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: decimal.RequireFromString("145.60")},
		{Symbol: "NIFTY_FUT", Exchange: domain.ExchangeNSE, InstrumentType: domain.InstrumentTypeFutures, LastTradedPrice: decimal.RequireFromString("21850.00")},
	}
}

// Lookup returns the instrument for symbol, if known.
func (c *Catalog) Lookup(symbol string) (domain.Instrument, bool) {
	inst, ok := c.bySymbol[symbol]
	return inst, ok
}

// List returns all instruments in seed order.
func (c *Catalog) List() []domain.Instrument {
	result := make([]domain.Instrument, len(c.ordered))
	copy(result, c.ordered)
	return result
}

// Len returns the number of instruments.
func (c *Catalog) Len() int {
	return len(c.ordered)
}
