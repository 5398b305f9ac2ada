package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/tradingsdk/internal/domain"
)

// InstrumentLookup resolves a symbol to its instrument.
type InstrumentLookup interface {
	Lookup(symbol string) (domain.Instrument, bool)
}

// Executor fills placed orders immediately against the instrument's
// reference price. There is no book: every execution is a full fill.
type Executor struct {
	instruments InstrumentLookup
	now         func() time.Time
	newID       func() string
}

// NewExecutor creates an Executor that prices orders from instruments.
func NewExecutor(instruments InstrumentLookup) *Executor {
	return &Executor{
		instruments: instruments,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// Execute fills order and returns the resulting trade.
//
// MARKET orders fill at the instrument's last traded price; LIMIT orders
// fill at the submitted price regardless of the reference price.
//
// The order is marked EXECUTED and stamped in place. When the order is not
// PLACED or its symbol is not in the catalog, Execute leaves the order
// untouched and returns ok=false.
func (e *Executor) Execute(order *domain.Order) (trade *domain.Trade, ok bool) {
	if order.Status != domain.OrderStatusPlaced {
		return nil, false
	}

	inst, found := e.instruments.Lookup(order.Symbol)
	if !found {
		return nil, false
	}

	price, ok := executionPrice(order, inst)
	if !ok {
		return nil, false
	}

	executedAt := e.now()
	order.Status = domain.OrderStatusExecuted
	order.ExecutedAt = &executedAt

	return &domain.Trade{
		TradeID:       e.newID(),
		OrderID:       order.OrderID,
		Symbol:        order.Symbol,
		OrderType:     order.OrderType,
		Quantity:      order.Quantity,
		ExecutedPrice: price,
		ExecutedAt:    executedAt,
	}, true
}

func executionPrice(order *domain.Order, inst domain.Instrument) (decimal.Decimal, bool) {
	switch order.OrderStyle {
	case domain.OrderStyleMarket:
		return inst.LastTradedPrice, true
	case domain.OrderStyleLimit:
		if order.Price == nil {
			return decimal.Zero, false
		}
		return *order.Price, true
	}
	return decimal.Zero, false
}
