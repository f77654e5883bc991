package handler

import (
	"errors"
	"net/http"

	"cozy-threads/internal/middleware"
	"cozy-threads/internal/model"
	"cozy-threads/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutHandler serves the checkout form, runs the checkout transaction
// and shows the confirmation page.
type CheckoutHandler struct {
	checkout service.CheckoutService
	carts    service.CartService
	orders   service.OrderService
	pages    *Pages
	logger   zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(
	checkout service.CheckoutService,
	carts service.CartService,
	orders service.OrderService,
	pages *Pages,
	logger zerolog.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		carts:    carts,
		orders:   orders,
		pages:    pages,
		logger:   logger.With().Str("handler", "checkout").Logger(),
	}
}

// Show handles GET /checkout. An empty cart bounces back to the shop.
func (h *CheckoutHandler) Show(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.View(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		h.pages.ServerError(w, r)
		return
	}

	if len(view.Items) == 0 {
		h.pages.Flash(r, "error", "Your cart is empty")
		redirect(w, r, "/shop")
		return
	}

	h.pages.Render(w, r, http.StatusOK, "checkout.html", view)
}

// Submit handles POST /checkout: it runs the checkout transaction and
// redirects to the confirmation page on success. Failures keep the cart and
// send the user back with a flash message.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.Flash(r, "error", "Invalid form submission")
		redirect(w, r, "/checkout")
		return
	}

	form := &model.CheckoutForm{
		CustomerName:    r.PostFormValue("customer_name"),
		CustomerEmail:   r.PostFormValue("customer_email"),
		CustomerPhone:   r.PostFormValue("customer_phone"),
		ShippingAddress: r.PostFormValue("shipping_address"),
		ShippingCity:    r.PostFormValue("shipping_city"),
		ShippingState:   r.PostFormValue("shipping_state"),
		ShippingZip:     r.PostFormValue("shipping_zip"),
		PaymentMethod:   r.PostFormValue("payment_method"),
		Notes:           r.PostFormValue("notes"),
	}

	order, err := h.checkout.PlaceOrder(r.Context(), middleware.SessionID(r.Context()), form)
	if err != nil {
		var domainErr *model.DomainError
		switch {
		case errors.Is(err, model.ErrEmptyCart):
			h.pages.Flash(r, "error", "Your cart is empty")
			redirect(w, r, "/shop")
		case errors.As(err, &domainErr):
			h.pages.Flash(r, "error", domainErr.Message)
			redirect(w, r, "/cart")
		default:
			h.logger.Error().Err(err).Msg("checkout failed")
			h.pages.Flash(r, "error", "Error placing order, please try again")
			redirect(w, r, "/checkout")
		}
		return
	}

	redirect(w, r, "/order-success/"+order.ID.String())
}

// Success handles GET /order-success/{order_id}.
func (h *CheckoutHandler) Success(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "order_id"))
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

	h.pages.Render(w, r, http.StatusOK, "success.html", order)
}
