package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cozy-threads/internal/middleware"
	"cozy-threads/internal/model"
	"cozy-threads/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// UpdateCartResponse is the JSON shape of POST /update-cart/{id}.
type UpdateCartResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CartHandler serves the cart page and the cart mutations.
type CartHandler struct {
	carts  service.CartService
	pages  *Pages
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService, pages *Pages, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		pages:  pages,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// View handles GET /cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.View(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		h.pages.ServerError(w, r)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "cart.html", view)
}

// Add handles POST /add-to-cart/{id} with form fields quantity, size, color.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	quantity := 1
	if raw := r.PostFormValue("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.pages.Flash(r, "error", "Invalid quantity")
			redirectBack(w, r, "/shop")
			return
		}
		quantity = parsed
	}
	size := r.PostFormValue("size")
	color := r.PostFormValue("color")

	product, err := h.carts.Add(r.Context(), middleware.SessionID(r.Context()), productID, quantity, size, color)
	if err != nil {
		var domainErr *model.DomainError
		switch {
		case errors.Is(err, model.ErrProductNotFound):
			h.pages.NotFound(w, r)
			return
		case errors.As(err, &domainErr):
			h.pages.Flash(r, "error", domainErr.Message)
		default:
			h.pages.Flash(r, "error", "Something went wrong, please try again")
		}
		redirectBack(w, r, "/shop")
		return
	}

	h.pages.Flash(r, "success", fmt.Sprintf("Added %s to cart", product.Name))
	redirectBack(w, r, "/shop")
}

// Remove handles GET /remove-from-cart/{id}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.carts.Remove(r.Context(), middleware.SessionID(r.Context()), productID); err != nil {
		h.pages.ServerError(w, r)
		return
	}

	h.pages.Flash(r, "success", "Item removed from cart")
	redirect(w, r, "/cart")
}

// Update handles POST /update-cart/{id} with form field quantity, answering
// {success, error?} as JSON.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, UpdateCartResponse{Success: false, Error: "Invalid quantity"})
		return
	}

	err = h.carts.Update(r.Context(), middleware.SessionID(r.Context()), productID, quantity)
	if err != nil {
		var domainErr *model.DomainError
		switch {
		case errors.Is(err, model.ErrProductNotFound):
			writeJSON(w, http.StatusNotFound, UpdateCartResponse{Success: false, Error: "Product not found"})
		case errors.As(err, &domainErr):
			writeJSON(w, http.StatusOK, UpdateCartResponse{Success: false, Error: domainErr.Message})
		default:
			h.logger.Error().Err(err).Str("product_id", productID).Msg("failed to update cart")
			writeJSON(w, http.StatusInternalServerError, UpdateCartResponse{Success: false, Error: "Failed to update cart"})
		}
		return
	}

	writeJSON(w, http.StatusOK, UpdateCartResponse{Success: true})
}
