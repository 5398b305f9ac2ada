package handler

import (
	"net/http"

	"github.com/efreitasn/tradingsdk/internal/domain"
	"github.com/efreitasn/tradingsdk/internal/service"
)

// InstrumentHandler serves the instrument catalog.
type InstrumentHandler struct {
	svc *service.TradingService
}

// NewInstrumentHandler creates a new InstrumentHandler.
func NewInstrumentHandler(svc *service.TradingService) *InstrumentHandler {
	return &InstrumentHandler{svc: svc}
}

type instrumentResponse struct {
	Symbol          string  `json:"symbol"`
	Exchange        string  `json:"exchange"`
	InstrumentType  string  `json:"instrumentType"`
	LastTradedPrice float64 `json:"lastTradedPrice"`
}

// List handles GET /api/v1/instruments.
func (h *InstrumentHandler) List(w http.ResponseWriter, r *http.Request) {
	instruments := h.svc.ListInstruments()

	resp := make([]instrumentResponse, len(instruments))
	for i, inst := range instruments {
		resp[i] = instrumentResponse{
			Symbol:          inst.Symbol,
			Exchange:        string(inst.Exchange),
			InstrumentType:  string(inst.InstrumentType),
			LastTradedPrice: domain.PriceToFloat(inst.LastTradedPrice),
		}
	}

	WriteJSON(w, http.StatusOK, resp)
}
