package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest is a caller's instruction to buy or sell an instrument.
type OrderRequest struct {
	Symbol     string
	OrderType  OrderType
	OrderStyle OrderStyle
	Quantity   int64
	Price      *decimal.Decimal // required for LIMIT, must be nil for MARKET
}

// Validate checks the request shape. It does not consult any state.
func (r OrderRequest) Validate() error {
	if r.Symbol == "" {
		return &ValidationError{Message: "symbol is required"}
	}
	if !r.OrderType.Valid() {
		return &ValidationError{Message: "orderType must be one of: BUY, SELL"}
	}
	if !r.OrderStyle.Valid() {
		return &ValidationError{Message: "orderStyle must be one of: MARKET, LIMIT"}
	}
	if r.Quantity <= 0 {
		return &ValidationError{Message: "quantity must be a positive integer"}
	}
	if r.Price != nil && !r.Price.IsPositive() {
		return &ValidationError{Message: "price must be greater than 0"}
	}

	switch r.OrderStyle {
	case OrderStyleLimit:
		if r.Price == nil {
			return &ValidationError{Message: "Price is mandatory for LIMIT orders"}
		}
	case OrderStyleMarket:
		if r.Price != nil {
			return &ValidationError{Message: "Price should not be provided for MARKET orders"}
		}
	}
	return nil
}

// Order is a placed order. Status moves PLACED → EXECUTED inside placement.
type Order struct {
	OrderID    string
	Symbol     string
	OrderType  OrderType
	OrderStyle OrderStyle
	Quantity   int64
	Price      *decimal.Decimal // nil for market orders
	Status     OrderStatus
	CreatedAt  time.Time
	ExecutedAt *time.Time
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (o *Order) Clone() *Order {
	c := *o
	if o.Price != nil {
		p := *o.Price
		c.Price = &p
	}
	if o.ExecutedAt != nil {
		at := *o.ExecutedAt
		c.ExecutedAt = &at
	}
	return &c
}
