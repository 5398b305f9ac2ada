package handler

import (
	"net/http"

	"github.com/efreitasn/tradingsdk/internal/domain"
	"github.com/efreitasn/tradingsdk/internal/service"
)

// TradeHandler serves the trade log.
type TradeHandler struct {
	svc *service.TradingService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(svc *service.TradingService) *TradeHandler {
	return &TradeHandler{svc: svc}
}

type tradeResponse struct {
	TradeID       string  `json:"tradeId"`
	OrderID       string  `json:"orderId"`
	Symbol        string  `json:"symbol"`
	OrderType     string  `json:"orderType"`
	Quantity      int64   `json:"quantity"`
	ExecutedPrice float64 `json:"executedPrice"`
	ExecutedAt    string  `json:"executedAt"`
}

// List handles GET /api/v1/trades. The optional symbol query parameter
// restricts the log to one instrument.
func (h *TradeHandler) List(w http.ResponseWriter, r *http.Request) {
	trades, err := h.svc.ListTrades(r.URL.Query().Get("symbol"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := make([]tradeResponse, len(trades))
	for i, t := range trades {
		resp[i] = tradeResponse{
			TradeID:       t.TradeID,
			OrderID:       t.OrderID,
			Symbol:        t.Symbol,
			OrderType:     string(t.OrderType),
			Quantity:      t.Quantity,
			ExecutedPrice: domain.PriceToFloat(t.ExecutedPrice),
			ExecutedAt:    formatTime(t.ExecutedAt),
		}
	}

	WriteJSON(w, http.StatusOK, resp)
}
