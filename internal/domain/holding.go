package domain

import "github.com/shopspring/decimal"

// Holding is a symbol's accumulated position with its average cost basis.
// CurrentValue is a mark taken at read time, not an authoritative figure.
type Holding struct {
	Symbol       string
	Quantity     int64
	AveragePrice decimal.Decimal
	CurrentValue decimal.Decimal
}
