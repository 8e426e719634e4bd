package phases

import (
	"errors"
	"net/http"
)

// Domain errors for phase operations.
var (
	ErrNotFound      = errors.New("phase not found")
	ErrDuplicate     = errors.New("phase already exists at this position")
	ErrInvalidStatus = errors.New("invalid phase status")
	ErrMissingName   = errors.New("phase name required")
)

// MapHTTPStatus maps phase domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrMissingName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
