package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review attached to a product. Ratings are expected
// to be 1-5 but the schema does not enforce the range; the average-rating
// computation tolerates whatever was stored.
type Review struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProductID    string    `json:"product_id" db:"product_id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	Rating       int       `json:"rating" db:"rating"`
	Comment      string    `json:"comment" db:"comment"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
