package requests

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

// Domain errors for project request operations.
var (
	ErrNotFound          = errors.New("request not found")
	ErrDuplicate         = errors.New("request already exists")
	ErrValidation        = errors.New("invalid submission")
	ErrInvalidTransition = errors.New("proposal status transition not allowed")
	ErrAlreadyConverted  = errors.New("request already converted")
	ErrNotOwner          = errors.New("request does not belong to client")
)

func missingField(field string) error {
	return fmt.Errorf("%w: %s required", ErrValidation, field)
}

func invalidField(field string) error {
	return fmt.Errorf("%w: malformed %s", ErrValidation, field)
}

// MapGuardedWrite resolves an error from a proposal write guarded by the
// conversion predicate. The row was read just before the write, so a write
// matching no row means a concurrent conversion claimed the request.
func MapGuardedWrite(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAlreadyConverted
	}
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}

// MapHTTPStatus maps request domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrAlreadyConverted):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
