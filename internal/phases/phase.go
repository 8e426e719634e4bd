// Package phases implements project phase tracking: ordered phases per
// project with a tri-state status, admin CRUD, and live change notifications
// for the client portal.
package phases

import (
	"time"

	"github.com/google/uuid"
)

// Phase status values. Transitions between them are unconstrained; values
// outside this set are rejected.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// Phase represents one step of a project's delivery plan. OrderIndex is
// unique per project and gap-free.
type Phase struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Seed describes a phase to insert when seeding a project's plan.
type Seed struct {
	Name        string
	Description string
	Status      string
}

// CreateCommand appends a phase to a project's plan. Status defaults to
// pending when empty.
type CreateCommand struct {
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
}

// UpdateCommand patches a phase. Nil fields are untouched.
type UpdateCommand struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ValidStatus reports whether s is a recognized phase status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}
