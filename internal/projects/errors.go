package projects

import (
	"errors"
	"net/http"

	"github.com/surjithprasanna/proz-portal/internal/clients"
	"github.com/surjithprasanna/proz-portal/internal/requests"
)

// Domain errors for project operations.
var (
	ErrNotFound          = errors.New("project not found")
	ErrDuplicate         = errors.New("project already exists")
	ErrInvalidStatus     = errors.New("invalid project status")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
	ErrMissingClientName = errors.New("client name required")
)

// MapHTTPStatus maps project domain errors to HTTP status codes. Conversion
// and provisioning surface request- and client-domain errors, which keep
// their own mappings.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidProgress),
		errors.Is(err, ErrMissingClientName):
		return http.StatusBadRequest
	case errors.Is(err, requests.ErrNotFound),
		errors.Is(err, requests.ErrAlreadyConverted):
		return requests.MapHTTPStatus(err)
	case errors.Is(err, clients.ErrDuplicate),
		errors.Is(err, clients.ErrInvalidAccessCode),
		errors.Is(err, clients.ErrMissingName):
		return clients.MapHTTPStatus(err)
	default:
		return http.StatusInternalServerError
	}
}
