package model

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. Checkout creates orders directly in Processing; Pending is
// only the schema default for rows created outside the checkout path.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order.
type Order struct {
	ID              uuid.UUID `db:"id"`
	OrderNumber     string    `db:"order_number"`
	CustomerName    string    `db:"customer_name"`
	CustomerEmail   string    `db:"customer_email"`
	CustomerPhone   string    `db:"customer_phone"`
	ShippingAddress string    `db:"shipping_address"`
	ShippingCity    string    `db:"shipping_city"`
	ShippingState   string    `db:"shipping_state"`
	ShippingZip     string    `db:"shipping_zip"`
	TotalAmount     float64   `db:"total_amount"`
	Status          string    `db:"status"`
	PaymentMethod   string    `db:"payment_method"`
	Notes           string    `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	Items           []OrderItem
}

// OrderItem is a line item in an order. PriceAtPurchase is the product price
// frozen at checkout time and never updated afterwards.
type OrderItem struct {
	ID              uuid.UUID `db:"id"`
	OrderID         uuid.UUID `db:"order_id"`
	ProductID       string    `db:"product_id"`
	ProductName     string    `db:"-"`
	Quantity        int       `db:"quantity"`
	Size            string    `db:"size"`
	Color           string    `db:"color"`
	PriceAtPurchase float64   `db:"price_at_purchase"`
	CreatedAt       time.Time `db:"created_at"`
}

// Subtotal returns quantity times the frozen purchase price.
func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.PriceAtPurchase
}

// OrderJSON is the wire shape for an order on the JSON endpoints.
type OrderJSON struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	TotalAmount   float64         `json:"total_amount"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
	Items         []OrderItemJSON `json:"items"`
}

// OrderItemJSON is the wire shape for an order line item.
type OrderItemJSON struct {
	ID              string  `json:"id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	Size            string  `json:"size"`
	Color           string  `json:"color"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	Subtotal        float64 `json:"subtotal"`
}

// ToJSON converts an order and its items into the wire shape. Timestamps are
// rendered as "YYYY-MM-DD HH:MM:SS".
func (o *Order) ToJSON() OrderJSON {
	items := make([]OrderItemJSON, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemJSON{
			ID:              item.ID.String(),
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			Size:            item.Size,
			Color:           item.Color,
			PriceAtPurchase: item.PriceAtPurchase,
			Subtotal:        item.Subtotal(),
		})
	}
	return OrderJSON{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04:05"),
		Items:         items,
	}
}

// OrderStats holds the admin dashboard counters.
type OrderStats struct {
	TotalOrders   int
	TotalRevenue  float64
	PendingOrders int
}

// AdminDashboard is everything the admin page displays.
type AdminDashboard struct {
	Stats        OrderStats
	Products     []Product
	RecentOrders []Order
}
