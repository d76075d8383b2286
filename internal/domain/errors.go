package domain

import "errors"

var (
	// Record errors
	ErrPriceNotFound    = errors.New("price data not found")
	ErrExchangeNotFound = errors.New("exchange info not found")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")
	ErrStorage     = errors.New("key-value store operation failed")

	// General errors
	ErrInternal = errors.New("internal server error")
)

// ValidationError carries the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error for a named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
