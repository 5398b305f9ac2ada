package engine

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/efreitasn/tradingsdk/internal/catalog"
	"github.com/efreitasn/tradingsdk/internal/domain"
)

// genPrice draws a positive two-decimal price.
func genPrice(t *rapid.T, label string) decimal.Decimal {
	return decimal.New(rapid.Int64Range(1, 10_000_000).Draw(t, label), -2)
}

func TestProperty_ExecutionPriceRule(t *testing.T) {
	cat := catalog.Default()
	instruments := cat.List()

	rapid.Check(t, func(t *rapid.T) {
		inst := rapid.SampledFrom(instruments).Draw(t, "instrument")
		side := rapid.SampledFrom([]domain.OrderType{domain.OrderTypeBuy, domain.OrderTypeSell}).Draw(t, "side")
		style := rapid.SampledFrom([]domain.OrderStyle{domain.OrderStyleMarket, domain.OrderStyleLimit}).Draw(t, "style")
		qty := rapid.Int64Range(1, 1_000_000).Draw(t, "qty")

		var price *decimal.Decimal
		if style == domain.OrderStyleLimit {
			p := genPrice(t, "limit")
			price = &p
		}

		order := newPlacedOrder(side, style, inst.Symbol, qty, price)
		trade, ok := NewExecutor(cat).Execute(order)
		if !ok {
			t.Fatalf("Execute returned ok=false for %s", inst.Symbol)
		}

		want := inst.LastTradedPrice
		if style == domain.OrderStyleLimit {
			want = *price
		}
		if !trade.ExecutedPrice.Equal(want) {
			t.Fatalf("ExecutedPrice = %s, want %s (style %s)", trade.ExecutedPrice, want, style)
		}
		if trade.Quantity != qty || trade.Symbol != inst.Symbol || trade.OrderType != side {
			t.Fatalf("trade %+v does not mirror order", trade)
		}
		if order.Status != domain.OrderStatusExecuted {
			t.Fatalf("Status = %s, want EXECUTED", order.Status)
		}
	})
}

func TestProperty_IncrementalAverageIsWeightedMean(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "numBuys")
		p := NewPortfolio()

		totalCost := decimal.Zero
		var totalQty int64
		for i := 0; i < n; i++ {
			qty := rapid.Int64Range(1, 10_000).Draw(t, fmt.Sprintf("qty-%d", i))
			price := genPrice(t, fmt.Sprintf("price-%d", i))

			p.Apply(&domain.Trade{Symbol: "RELIANCE", OrderType: domain.OrderTypeBuy, Quantity: qty, ExecutedPrice: price})
			totalCost = totalCost.Add(domain.Notional(price, qty))
			totalQty += qty
		}

		h, ok := p.Holding("RELIANCE")
		if !ok {
			t.Fatal("holding missing after buys")
		}
		if h.Quantity != totalQty {
			t.Fatalf("Quantity = %d, want %d", h.Quantity, totalQty)
		}

		want := totalCost.Div(decimal.NewFromInt(totalQty))
		tolerance := decimal.New(1, -8)
		if h.AveragePrice.Sub(want).Abs().GreaterThan(tolerance) {
			t.Fatalf("AveragePrice = %s, want %s", h.AveragePrice, want)
		}
	})
}

func TestProperty_HoldingNeverNonPositive(t *testing.T) {
	symbols := []string{"RELIANCE", "TCS", "INFY"}

	rapid.Check(t, func(t *rapid.T) {
		p := NewPortfolio()
		expected := make(map[string]int64)

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			sym := rapid.SampledFrom(symbols).Draw(t, fmt.Sprintf("sym-%d", i))
			held := expected[sym]

			// Sells never exceed the held quantity, mirroring the sufficiency check.
			if held > 0 && rapid.Bool().Draw(t, fmt.Sprintf("sell-%d", i)) {
				qty := rapid.Int64Range(1, held).Draw(t, fmt.Sprintf("sellQty-%d", i))
				p.Apply(&domain.Trade{Symbol: sym, OrderType: domain.OrderTypeSell, Quantity: qty, ExecutedPrice: decimal.NewFromInt(1)})
				expected[sym] -= qty
			} else {
				qty := rapid.Int64Range(1, 100).Draw(t, fmt.Sprintf("buyQty-%d", i))
				p.Apply(&domain.Trade{Symbol: sym, OrderType: domain.OrderTypeBuy, Quantity: qty, ExecutedPrice: decimal.NewFromInt(1)})
				expected[sym] += qty
			}

			for _, h := range p.Holdings() {
				if h.Quantity <= 0 {
					t.Fatalf("holding %s has quantity %d", h.Symbol, h.Quantity)
				}
			}
			for s, q := range expected {
				if p.Quantity(s) != q {
					t.Fatalf("Quantity(%s) = %d, want %d", s, p.Quantity(s), q)
				}
				if _, ok := p.Holding(s); ok != (q > 0) {
					t.Fatalf("holding presence for %s = %v with quantity %d", s, ok, q)
				}
			}
		}
	})
}
