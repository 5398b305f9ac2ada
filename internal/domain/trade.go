package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade records the execution of a single order.
type Trade struct {
	TradeID       string
	OrderID       string
	Symbol        string
	OrderType     OrderType
	Quantity      int64
	ExecutedPrice decimal.Decimal
	ExecutedAt    time.Time
}
