package service

import (
	"context"

	"cozy-threads/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines read-only projections over the product catalogue.
type CatalogService interface {
	// List retrieves products with optional category filter and sort key.
	List(ctx context.Context, category, sort string) ([]model.Product, error)

	// Categories returns the distinct product categories.
	Categories(ctx context.Context) ([]string, error)

	// Featured retrieves the home-page products.
	Featured(ctx context.Context) ([]model.Product, error)

	// Detail retrieves a product with its reviews and average rating.
	Detail(ctx context.Context, id string) (*model.ProductDetail, error)
}

// CartService manages the session-held cart.
type CartService interface {
	// Get returns the raw cart mapping for the session.
	Get(ctx context.Context, sid string) (model.Cart, error)

	// Add puts quantity of a product into the cart, merging with an existing
	// entry. Returns the product for the caller's confirmation message.
	Add(ctx context.Context, sid, productID string, quantity int, size, color string) (*model.Product, error)

	// Update overwrites an entry's quantity; below 1 removes the entry.
	Update(ctx context.Context, sid, productID string, quantity int) error

	// Remove deletes an entry; absent entries are a no-op.
	Remove(ctx context.Context, sid, productID string) error

	// Clear empties the cart.
	Clear(ctx context.Context, sid string) error

	// View joins the cart with live product data for rendering.
	View(ctx context.Context, sid string) (*model.CartView, error)
}

// CheckoutService converts a cart into a durable order.
type CheckoutService interface {
	// PlaceOrder runs the checkout transaction for the session's cart.
	PlaceOrder(ctx context.Context, sid string, form *model.CheckoutForm) (*model.Order, error)
}

// OrderService defines operations over placed orders.
type OrderService interface {
	// List retrieves all orders, newest first, items included.
	List(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus overwrites an order's status and returns the updated order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)

	// Dashboard assembles the admin page data.
	Dashboard(ctx context.Context) (*model.AdminDashboard, error)
}
