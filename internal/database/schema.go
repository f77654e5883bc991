package database

import (
	"context"
	"fmt"

	"cozy-threads/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const schema = `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		price DECIMAL(10, 2) NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0,
		category VARCHAR(50) NOT NULL DEFAULT '',
		image_url VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		order_number VARCHAR(20) NOT NULL UNIQUE,
		customer_name VARCHAR(100) NOT NULL,
		customer_email VARCHAR(100) NOT NULL,
		customer_phone VARCHAR(20) NOT NULL DEFAULT '',
		shipping_address VARCHAR(300) NOT NULL,
		shipping_city VARCHAR(50) NOT NULL,
		shipping_state VARCHAR(50) NOT NULL DEFAULT '',
		shipping_zip VARCHAR(10) NOT NULL DEFAULT '',
		total_amount DECIMAL(10, 2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Pending',
		payment_method VARCHAR(50) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id VARCHAR(50) NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL,
		size VARCHAR(10) NOT NULL DEFAULT '',
		color VARCHAR(50) NOT NULL DEFAULT '',
		price_at_purchase DECIMAL(10, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		product_id VARCHAR(50) NOT NULL REFERENCES products(id),
		customer_name VARCHAR(100) NOT NULL,
		rating INTEGER,
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

// InitSchema creates the storefront tables if they do not exist yet. There
// is no migration system; the schema is created in full at startup.
func InitSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	logger.Info().Msg("database schema ready")
	return nil
}

// SeedProducts returns the fixed sample catalogue inserted on first start.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: "P001", Name: "Classic Crewneck Sweatshirt", Description: "Comfortable and cozy classic crewneck sweatshirt perfect for everyday wear.", Price: 45.99, Stock: 100, Category: "Sweatshirts"},
		{ID: "P002", Name: "Premium Hoodie", Description: "High-quality hoodie with drawstring and kangaroo pocket.", Price: 59.99, Stock: 80, Category: "Hoodies"},
		{ID: "P003", Name: "Athletic Sweatpants", Description: "Relaxed fit sweatpants with elastic waistband and tapered ankles.", Price: 39.99, Stock: 120, Category: "Bottoms"},
		{ID: "P004", Name: "Zip-Up Hoodie", Description: "Versatile zip-up hoodie with double pockets.", Price: 65.99, Stock: 75, Category: "Hoodies"},
		{ID: "P005", Name: "Fleece Sweatshirt", Description: "Soft fleece sweatshirt ideal for cooler weather.", Price: 54.99, Stock: 90, Category: "Sweatshirts"},
		{ID: "P006", Name: "Running Sweatpants", Description: "Lightweight sweatpants designed for active lifestyle.", Price: 44.99, Stock: 110, Category: "Bottoms"},
		{ID: "P007", Name: "Oversized Sweatshirt", Description: "Trendy oversized fit sweatshirt for maximum comfort.", Price: 49.99, Stock: 85, Category: "Sweatshirts"},
		{ID: "P008", Name: "Color Block Hoodie", Description: "Modern color-block design hoodie with contrast panels.", Price: 69.99, Stock: 60, Category: "Hoodies"},
	}
}

// Seed inserts the sample catalogue when the products table is empty.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range SeedProducts() {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, description, price, stock, category, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, p.ID, p.Name, p.Description, p.Price, p.Stock, p.Category, p.ImageURL)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	logger.Info().Int("count", len(SeedProducts())).Msg("seeded sample products")
	return nil
}
