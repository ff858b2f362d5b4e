package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// StockConflictResponse is returned when a cart item cannot be fulfilled.
type StockConflictResponse struct {
	Error     string `json:"error"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
}

// Error messages surfaced to API clients.
const (
	MsgStockNotAvailable = "Stock not available"
	MsgDuplicateOrder    = "Duplicate order"
	MsgInvalidBody       = "Invalid request body"
	MsgInvalidQuery      = "Invalid query parameter"
)

// ErrDuplicateOrder is returned when an order with the same idempotency key
// already exists.
var ErrDuplicateOrder = errors.New("duplicate order")

// StockError reports the first cart item that cannot be fulfilled.
type StockError struct {
	ProductID string
	Name      string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock not available for product %s", e.ProductID)
}

// ValidationError reports a request that failed schema validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
