package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/exchangethb/exchange-data-service/internal/domain"
)

// Response helpers for consistent JSON responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondErrorWithCode sends an error response with an error code
func respondErrorWithCode(w http.ResponseWriter, status int, message, code string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// handleDomainError maps domain errors to HTTP responses. Everything outside
// the taxonomy collapses to a generic 500.
func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondErrorWithCode(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")

	case errors.Is(err, domain.ErrPriceNotFound):
		respondErrorWithCode(w, http.StatusNotFound, "price data not found", "PRICE_NOT_FOUND")

	case errors.Is(err, domain.ErrExchangeNotFound):
		respondErrorWithCode(w, http.StatusNotFound, "exchange info not found", "EXCHANGE_NOT_FOUND")

	default:
		respondErrorWithCode(w, http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
