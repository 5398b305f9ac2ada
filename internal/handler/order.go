package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/tradingsdk/internal/domain"
	"github.com/efreitasn/tradingsdk/internal/service"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	svc *service.TradingService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc *service.TradingService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// placeOrderRequest is the JSON request body for POST /api/v1/orders.
type placeOrderRequest struct {
	Symbol     string   `json:"symbol"`
	OrderType  string   `json:"orderType"`
	OrderStyle string   `json:"orderStyle"`
	Quantity   int64    `json:"quantity"`
	Price      *float64 `json:"price"`
}

// orderResponse is the JSON representation of an order.
// Price and executedAt are always present and null when unset.
type orderResponse struct {
	OrderID    string   `json:"orderId"`
	Symbol     string   `json:"symbol"`
	OrderType  string   `json:"orderType"`
	OrderStyle string   `json:"orderStyle"`
	Quantity   int64    `json:"quantity"`
	Price      *float64 `json:"price"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"createdAt"`
	ExecutedAt *string  `json:"executedAt"`
}

// PlaceOrder handles POST /api/v1/orders.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := ParseJSON(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	var price *decimal.Decimal
	if req.Price != nil {
		p := decimal.NewFromFloat(*req.Price)
		price = &p
	}

	order, err := h.svc.PlaceOrder(domain.OrderRequest{
		Symbol:     req.Symbol,
		OrderType:  domain.OrderType(req.OrderType),
		OrderStyle: domain.OrderStyle(req.OrderStyle),
		Quantity:   req.Quantity,
		Price:      price,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildOrderResponse(order))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(chi.URLParam(r, "orderId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildOrderResponse(order))
}

func buildOrderResponse(o *domain.Order) orderResponse {
	resp := orderResponse{
		OrderID:    o.OrderID,
		Symbol:     o.Symbol,
		OrderType:  string(o.OrderType),
		OrderStyle: string(o.OrderStyle),
		Quantity:   o.Quantity,
		Status:     string(o.Status),
		CreatedAt:  formatTime(o.CreatedAt),
		ExecutedAt: formatTimePtr(o.ExecutedAt),
	}
	if o.Price != nil {
		v := domain.PriceToFloat(*o.Price)
		resp.Price = &v
	}
	return resp
}
