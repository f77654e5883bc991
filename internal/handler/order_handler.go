package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cozy-threads/internal/model"
	"cozy-threads/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StatusUpdateRequest is the body of POST /api/order/{id}/status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// StatusUpdateResponse wraps the updated order.
type StatusUpdateResponse struct {
	Success bool            `json:"success"`
	Order   model.OrderJSON `json:"order"`
}

// OrderHandler serves order history pages, the admin dashboard and the
// orders API.
type OrderHandler struct {
	orders service.OrderService
	pages  *Pages
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, pages *Pages, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		pages:  pages,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		h.pages.ServerError(w, r)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "orders.html", map[string]any{
		"Orders": orders,
	})
}

// Detail handles GET /order/{id}.
func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.pages.NotFound(w, r)
		return
	}

	order, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			h.pages.NotFound(w, r)
			return
		}
		h.pages.ServerError(w, r)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "order.html", order)
}

// Admin handles GET /admin.
func (h *OrderHandler) Admin(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.orders.Dashboard(r.Context())
	if err != nil {
		h.pages.ServerError(w, r)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "admin.html", dashboard)
}

// UpdateStatus handles POST /api/order/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "order not found", h.logger)
		case errors.Is(err, model.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "invalid order status", h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "failed to update order status", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, StatusUpdateResponse{Success: true, Order: order.ToJSON()})
}

// APIOrders handles GET /api/orders.
func (h *OrderHandler) APIOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	payload := make([]model.OrderJSON, 0, len(orders))
	for i := range orders {
		payload = append(payload, orders[i].ToJSON())
	}
	writeJSON(w, http.StatusOK, payload)
}
