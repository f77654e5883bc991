package repository

import (
	"context"

	"cozy-threads/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products, optionally filtered by exact category match,
	// ordered by the given sort key (name, price_low, price_high, newest).
	List(ctx context.Context, category, sort string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil) when
	// the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Featured retrieves up to limit products for the home page.
	Featured(ctx context.Context, limit int) ([]model.Product, error)

	// Categories returns the distinct product categories.
	Categories(ctx context.Context) ([]string, error)

	// Create inserts a new product.
	Create(ctx context.Context, p *model.Product) error

	// DecrementStock reduces a product's stock by quantity within the given
	// transaction. Returns false when current stock is insufficient, in
	// which case nothing is changed.
	DecrementStock(ctx context.Context, tx pgx.Tx, id string, quantity int) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order with its items. Returns (nil, nil) when the
	// order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List retrieves all orders with their items, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// ListRecent retrieves the most recent orders without items.
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)

	// UpdateStatus overwrites an order's status unconditionally. Returns
	// false when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)

	// Stats computes the admin dashboard counters.
	Stats(ctx context.Context) (*model.OrderStats, error)
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// ListByProduct retrieves all reviews for a product.
	ListByProduct(ctx context.Context, productID string) ([]model.Review, error)

	// AverageRating returns the mean rating for a product, or 0 when the
	// product has no reviews.
	AverageRating(ctx context.Context, productID string) (float64, error)

	// Create inserts a new review. Rating values are stored as submitted;
	// the 1-5 range is not enforced.
	Create(ctx context.Context, review *model.Review) error
}
