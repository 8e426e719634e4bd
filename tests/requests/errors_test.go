package requests_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/surjithprasanna/proz-portal/internal/requests"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", requests.ErrNotFound, http.StatusNotFound},
		{"duplicate", requests.ErrDuplicate, http.StatusConflict},
		{"validation", requests.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: name required", requests.ErrValidation), http.StatusBadRequest},
		{"invalid transition", requests.ErrInvalidTransition, http.StatusConflict},
		{"already converted", requests.ErrAlreadyConverted, http.StatusConflict},
		{"not owner", requests.ErrNotOwner, http.StatusForbidden},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requests.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestMapGuardedWrite(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows means concurrently converted", sql.ErrNoRows, requests.ErrAlreadyConverted},
		{"wrapped no rows", fmt.Errorf("update request: %w", sql.ErrNoRows), requests.ErrAlreadyConverted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requests.MapGuardedWrite(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("MapGuardedWrite(%v) = %v, want %v", tt.err, got, tt.want)
			}
			if status := requests.MapHTTPStatus(got); status != http.StatusConflict {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", got, status, http.StatusConflict)
			}
		})
	}

	backend := errors.New("connection reset")
	if got := requests.MapGuardedWrite(backend); !errors.Is(got, backend) {
		t.Errorf("MapGuardedWrite(%v) = %v, want the error unchanged", backend, got)
	}
}
