package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/order/app"
	"github.com/prasetya/fulfillment/internal/order/domain"
)

type Handler struct {
	svc *app.Service
	log *slog.Logger
}

func NewHandler(svc *app.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /orders", h.placeOrder)
	mux.HandleFunc("GET /orders/{orderId}", h.getOrder)
}

type placeOrderRequest struct {
	UserID string `json:"userId"`
}

type orderItemDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type orderDTO struct {
	OrderID        string          `json:"orderId"`
	UserID         string          `json:"userId"`
	Items          []orderItemDTO  `json:"items"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"status"`
	TrackingNumber string          `json:"trackingNumber"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid JSON payload")
		return
	}

	order, err := h.svc.PlaceOrder(r.Context(), req.UserID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderDTO(order))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), r.PathValue("orderId"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderDTO(order))
}

func toOrderDTO(o domain.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return orderDTO{
		OrderID:        o.ID,
		UserID:         o.UserID,
		Items:          items,
		Total:          o.Total,
		Status:         o.Status,
		TrackingNumber: o.TrackingNumber,
		CreatedAt:      o.CreatedAt,
	}
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, app.ErrEmptyCart):
		h.writeError(w, http.StatusConflict, "EMPTY_CART", err.Error())
	case errors.Is(err, app.ErrOrderNotFound):
		h.writeError(w, http.StatusNotFound, "ORDER_NOT_FOUND", err.Error())
	case errors.Is(err, app.ErrPeerUnavailable):
		h.log.Error("peer call failed", slog.Any("err", err))
		h.writeError(w, http.StatusBadGateway, "PEER_UNAVAILABLE", err.Error())
	default:
		h.log.Error("request failed", slog.Any("err", err))
		h.writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("write response", slog.Any("err", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: code, Message: message}); err != nil {
		h.log.Error("write error response", slog.Any("err", err))
	}
}
