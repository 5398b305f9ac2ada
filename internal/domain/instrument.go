package domain

import "github.com/shopspring/decimal"

// Instrument is a tradable symbol with its reference (last traded) price.
type Instrument struct {
	Symbol          string
	Exchange        Exchange
	InstrumentType  InstrumentType
	LastTradedPrice decimal.Decimal
}

// Validate checks the instrument's enum fields and reference price.
func (i Instrument) Validate() error {
	if i.Symbol == "" {
		return &ValidationError{Message: "symbol is required"}
	}
	if !i.Exchange.Valid() {
		return &ValidationError{Message: "exchange must be one of: NSE, BSE"}
	}
	if !i.InstrumentType.Valid() {
		return &ValidationError{Message: "instrumentType must be one of: EQUITY, FUTURES, OPTIONS"}
	}
	if !i.LastTradedPrice.IsPositive() {
		return &ValidationError{Message: "lastTradedPrice must be greater than 0"}
	}
	return nil
}
