package clients

import (
	"errors"
	"net/http"
)

// Domain errors for client identity operations.
var (
	ErrNotFound          = errors.New("client not found")
	ErrDuplicate         = errors.New("client already exists for access code")
	ErrInvalidAccessCode = errors.New("invalid access code")
	ErrMissingName       = errors.New("display name required")
	ErrLoginFailed       = errors.New("access code not recognized")
	ErrCodeExhausted     = errors.New("could not generate unique access code")
)

// MapHTTPStatus maps client domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidAccessCode), errors.Is(err, ErrMissingName):
		return http.StatusBadRequest
	case errors.Is(err, ErrLoginFailed):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
