package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/prasetya/fulfillment/internal/cart/app"
	"github.com/prasetya/fulfillment/internal/cart/domain"
)

type Handler struct {
	svc *app.Service
	log *slog.Logger
}

func NewHandler(svc *app.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /cart/{userId}/items", h.addItem)
	mux.HandleFunc("GET /cart/{userId}", h.getCart)
	mux.HandleFunc("DELETE /cart/{userId}/items/{productId}", h.removeItem)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type lineItemDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

type cartViewDTO struct {
	UserID string          `json:"userId"`
	Items  []lineItemDTO   `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid JSON payload")
		return
	}

	view, err := h.svc.AddItem(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toViewDTO(view))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCart(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toViewDTO(view))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.RemoveItem(r.Context(), r.PathValue("userId"), r.PathValue("productId"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toViewDTO(view))
}

func toViewDTO(view domain.CartView) cartViewDTO {
	items := make([]lineItemDTO, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, lineItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return cartViewDTO{
		UserID: view.UserID,
		Items:  items,
		Total:  view.Total,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("write response", slog.Any("err", err))
	}
}
