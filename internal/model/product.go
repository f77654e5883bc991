package model

import "time"

// Product represents an item in the catalogue.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Stock       int       `json:"stock" db:"stock"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
}

// ProductDetail bundles a product with its reviews for the detail page.
type ProductDetail struct {
	Product       Product
	Reviews       []Review
	AverageRating float64
}

// Sort keys accepted by the product listing.
const (
	SortName      = "name"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortNewest    = "newest"
)
