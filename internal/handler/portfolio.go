package handler

import (
	"net/http"

	"github.com/efreitasn/tradingsdk/internal/domain"
	"github.com/efreitasn/tradingsdk/internal/service"
)

// PortfolioHandler serves the marked portfolio.
type PortfolioHandler struct {
	svc *service.TradingService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(svc *service.TradingService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

type holdingResponse struct {
	Symbol       string  `json:"symbol"`
	Quantity     int64   `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentValue float64 `json:"currentValue"`
}

// List handles GET /api/v1/portfolio.
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	holdings := h.svc.ListPortfolio()

	resp := make([]holdingResponse, len(holdings))
	for i, hd := range holdings {
		resp[i] = holdingResponse{
			Symbol:       hd.Symbol,
			Quantity:     hd.Quantity,
			AveragePrice: domain.PriceToFloat(hd.AveragePrice),
			CurrentValue: domain.PriceToFloat(hd.CurrentValue),
		}
	}

	WriteJSON(w, http.StatusOK, resp)
}
