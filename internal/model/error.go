package model

import "fmt"

// Standard error codes for API responses
const (
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation surfaced to the user.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Invalid quantity")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Your cart is empty")
	ErrInvalidStatus   = NewDomainError(ErrCodeInvalidStatus, "Invalid order status")
)

// InsufficientStock builds the stock error for a named product.
func InsufficientStock(productName string) *DomainError {
	if productName == "" {
		return NewDomainError(ErrCodeInsufficientStock, "Insufficient stock")
	}
	return NewDomainError(ErrCodeInsufficientStock, fmt.Sprintf("Product %s is out of stock", productName))
}

// MissingField builds the validation error for a missing required field.
func MissingField(name string) *DomainError {
	return NewDomainError(ErrCodeMissingField, fmt.Sprintf("Field %s is required", name))
}
