package auth

import (
	"errors"
	"net/http"
)

// Domain errors for authentication operations.
var (
	ErrUnauthorized = errors.New("invalid credentials")
	ErrForbidden    = errors.New("insufficient permissions")
)

// MapHTTPStatus maps auth domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
