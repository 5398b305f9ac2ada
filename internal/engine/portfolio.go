package engine

import (
	"github.com/google/btree"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/tradingsdk/internal/domain"
)

// holdingLess orders holdings by symbol so Min() is the alphabetically
// first symbol.
func holdingLess(a, b *domain.Holding) bool {
	return a.Symbol < b.Symbol
}

// Portfolio is the average-cost ledger: one holding per symbol with a
// positive quantity. It is not safe for concurrent use; callers hold
// their own lock across check-then-apply sequences.
type Portfolio struct {
	holdings *btree.BTreeG[*domain.Holding]
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	const degree = 16
	return &Portfolio{
		holdings: btree.NewG[*domain.Holding](degree, holdingLess),
	}
}

func (p *Portfolio) get(symbol string) (*domain.Holding, bool) {
	return p.holdings.Get(&domain.Holding{Symbol: symbol})
}

// Holding returns a copy of the holding for symbol, if any.
func (p *Portfolio) Holding(symbol string) (domain.Holding, bool) {
	h, ok := p.get(symbol)
	if !ok {
		return domain.Holding{}, false
	}
	return *h, true
}

// Quantity returns the held quantity for symbol, or 0 when there is none.
func (p *Portfolio) Quantity(symbol string) int64 {
	h, ok := p.get(symbol)
	if !ok {
		return 0
	}
	return h.Quantity
}

// Apply updates the holding for the trade's symbol.
//
// A BUY creates the holding or folds the fill into the average cost:
// (avg × qty + price × fillQty) / (qty + fillQty). A SELL reduces the
// quantity and removes the holding once it reaches zero; the average cost
// is unchanged. A SELL with no holding is ignored. Apply does not check
// sufficiency.
func (p *Portfolio) Apply(trade *domain.Trade) {
	switch trade.OrderType {
	case domain.OrderTypeBuy:
		p.applyBuy(trade)
	case domain.OrderTypeSell:
		p.applySell(trade)
	}
}

func (p *Portfolio) applyBuy(trade *domain.Trade) {
	h, ok := p.get(trade.Symbol)
	if !ok {
		p.holdings.ReplaceOrInsert(&domain.Holding{
			Symbol:       trade.Symbol,
			Quantity:     trade.Quantity,
			AveragePrice: trade.ExecutedPrice,
			CurrentValue: decimal.Zero,
		})
		return
	}

	totalCost := domain.Notional(h.AveragePrice, h.Quantity).
		Add(domain.Notional(trade.ExecutedPrice, trade.Quantity))
	h.Quantity += trade.Quantity
	h.AveragePrice = totalCost.Div(decimal.NewFromInt(h.Quantity))
}

func (p *Portfolio) applySell(trade *domain.Trade) {
	h, ok := p.get(trade.Symbol)
	if !ok {
		return
	}
	h.Quantity -= trade.Quantity
	if h.Quantity <= 0 {
		p.holdings.Delete(h)
	}
}

// Mark sets the current value of the holding for symbol to
// quantity × price. It is a no-op when there is no holding.
func (p *Portfolio) Mark(symbol string, price decimal.Decimal) {
	h, ok := p.get(symbol)
	if !ok {
		return
	}
	h.CurrentValue = domain.Notional(price, h.Quantity)
}

// Holdings returns copies of all holdings ordered by symbol.
func (p *Portfolio) Holdings() []domain.Holding {
	result := make([]domain.Holding, 0, p.holdings.Len())
	p.holdings.Ascend(func(h *domain.Holding) bool {
		result = append(result, *h)
		return true
	})
	return result
}

// Symbols returns the held symbols in ascending order.
func (p *Portfolio) Symbols() []string {
	result := make([]string, 0, p.holdings.Len())
	p.holdings.Ascend(func(h *domain.Holding) bool {
		result = append(result, h.Symbol)
		return true
	})
	return result
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int {
	return p.holdings.Len()
}
