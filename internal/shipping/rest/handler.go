package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/shipping/app"
	"github.com/prasetya/fulfillment/internal/shipping/domain"
)

type Handler struct {
	svc *app.Service
	log *slog.Logger
}

func NewHandler(svc *app.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /shipments", h.createShipment)
	mux.HandleFunc("GET /shipments/{trackingNumber}", h.getShipment)
}

type shipmentItemDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type createShipmentRequest struct {
	OrderID string            `json:"orderId"`
	UserID  string            `json:"userId"`
	Items   []shipmentItemDTO `json:"items"`
}

type shipmentDTO struct {
	TrackingNumber    string            `json:"trackingNumber"`
	OrderID           string            `json:"orderId"`
	UserID            string            `json:"userId"`
	Items             []shipmentItemDTO `json:"items"`
	Status            string            `json:"status"`
	EstimatedDelivery time.Time         `json:"estimatedDelivery"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid JSON payload")
		return
	}

	items := make([]domain.ShipmentItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.ShipmentItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	shipment, err := h.svc.CreateShipment(r.Context(), req.OrderID, req.UserID, items)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toShipmentDTO(shipment))
}

func (h *Handler) getShipment(w http.ResponseWriter, r *http.Request) {
	shipment, err := h.svc.GetShipment(r.Context(), r.PathValue("trackingNumber"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toShipmentDTO(shipment))
}

func toShipmentDTO(s domain.Shipment) shipmentDTO {
	items := make([]shipmentItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, shipmentItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return shipmentDTO{
		TrackingNumber:    s.TrackingNumber,
		OrderID:           s.OrderID,
		UserID:            s.UserID,
		Items:             items,
		Status:            s.Status,
		EstimatedDelivery: s.EstimatedDelivery,
	}
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, app.ErrShipmentNotFound):
		h.writeError(w, http.StatusNotFound, "SHIPMENT_NOT_FOUND", err.Error())
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
