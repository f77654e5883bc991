package model

import "strings"

// CheckoutForm carries the customer, shipping and payment fields submitted
// with a checkout request.
type CheckoutForm struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZip     string
	PaymentMethod   string
	Notes           string
}

// Validate checks that all required fields are present. Phone, state, zip
// and notes are optional.
func (f *CheckoutForm) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"customer_name", f.CustomerName},
		{"customer_email", f.CustomerEmail},
		{"shipping_address", f.ShippingAddress},
		{"shipping_city", f.ShippingCity},
		{"payment_method", f.PaymentMethod},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return MissingField(field.name)
		}
	}
	return nil
}
