package router

import (
	"net/http"
	"time"

	"cozy-threads/internal/handler"
	"cozy-threads/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	products *handler.ProductHandler,
	carts *handler.CartHandler,
	checkout *handler.CheckoutHandler,
	orders *handler.OrderHandler,
	pages *handler.Pages,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID, chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Session)
	r.Use(chimw.Timeout(15 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Storefront pages
	r.Get("/", products.Home)
	r.Get("/shop", products.Shop)
	r.Get("/product/{id}", products.Detail)

	// Cart
	r.Get("/cart", carts.View)
	r.Post("/add-to-cart/{id}", carts.Add)
	r.Get("/remove-from-cart/{id}", carts.Remove)
	r.Post("/update-cart/{id}", carts.Update)

	// Checkout
	r.Get("/checkout", checkout.Show)
	r.Post("/checkout", checkout.Submit)
	r.Get("/order-success/{order_id}", checkout.Success)

	// Order history and admin
	r.Get("/orders", orders.List)
	r.Get("/order/{id}", orders.Detail)
	r.Get("/admin", orders.Admin)

	// JSON API
	r.Get("/api/products", products.APIProducts)
	r.Get("/api/orders", orders.APIOrders)
	r.Post("/api/order/{id}/status", orders.UpdateStatus)

	r.NotFound(pages.NotFound)

	return r
}
