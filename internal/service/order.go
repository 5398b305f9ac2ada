package service

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/efreitasn/tradingsdk/internal/domain"
)

// PlaceOrder validates the request, checks the instrument and the held
// quantity (sells must be covered, buys must not overflow it), then executes the order and books the trade.
//
// All checks run before any state changes, so a rejected request leaves
// the store untouched. The sufficiency check and the ledger update happen
// under the same write lock.
func (s *TradingService) PlaceOrder(req domain.OrderRequest) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		s.logger.Debug("order rejected", slog.String("symbol", req.Symbol), slog.String("reason", err.Error()))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.Lookup(req.Symbol); !ok {
		s.logger.Debug("order rejected", slog.String("symbol", req.Symbol), slog.String("reason", "unknown symbol"))
		return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, req.Symbol)
	}

	held := s.portfolio.Quantity(req.Symbol)
	switch req.OrderType {
	case domain.OrderTypeBuy:
		if held > math.MaxInt64-req.Quantity {
			s.logger.Debug("order rejected",
				slog.String("symbol", req.Symbol),
				slog.Int64("requested", req.Quantity),
				slog.Int64("held", held),
			)
			return nil, &domain.ValidationError{Message: "quantity would exceed the maximum holding size"}
		}
	case domain.OrderTypeSell:
		if held < req.Quantity {
			s.logger.Debug("order rejected",
				slog.String("symbol", req.Symbol),
				slog.Int64("requested", req.Quantity),
				slog.Int64("held", held),
			)
			return nil, fmt.Errorf("%w: requested %d, held %d", domain.ErrInsufficientHoldings, req.Quantity, held)
		}
	}

	order := &domain.Order{
		OrderID:    s.newID(),
		Symbol:     req.Symbol,
		OrderType:  req.OrderType,
		OrderStyle: req.OrderStyle,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Status:     domain.OrderStatusPlaced,
		CreatedAt:  s.now(),
	}

	trade, ok := s.executor.Execute(order)
	if !ok {
		// The catalog is fixed for the process lifetime, so this only fires
		// if the executor and catalog disagree. Nothing has been stored yet.
		s.logger.Error("order not executed", slog.String("order_id", order.OrderID), slog.String("symbol", order.Symbol))
		return nil, fmt.Errorf("%w: order %s", domain.ErrExecutionSkipped, order.OrderID)
	}

	s.orderStore.Create(order)
	s.tradeStore.Append(trade)
	s.portfolio.Apply(trade)

	s.logger.Info("order executed",
		slog.String("order_id", order.OrderID),
		slog.String("trade_id", trade.TradeID),
		slog.String("symbol", order.Symbol),
		slog.String("order_type", string(order.OrderType)),
		slog.String("order_style", string(order.OrderStyle)),
		slog.Int64("quantity", order.Quantity),
		slog.String("executed_price", trade.ExecutedPrice.String()),
	)

	return order.Clone(), nil
}

// GetOrder retrieves an order by ID.
func (s *TradingService) GetOrder(orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.orderStore.Get(orderID)
}
