package phases

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// System defines the public contract for phase operations.
type System interface {
	Handler() *Handler

	// List returns a project's phases ordered by position.
	List(ctx context.Context, projectID uuid.UUID) ([]Phase, error)
	Find(ctx context.Context, id uuid.UUID) (*Phase, error)

	// Create appends a phase at the next order index.
	Create(ctx context.Context, cmd CreateCommand) (*Phase, error)

	// Update applies a partial patch of name, description, or status.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Phase, error)

	// Delete removes a phase and closes the order gap it leaves.
	Delete(ctx context.Context, id uuid.UUID) error

	// SeedTx inserts a phase plan for a project inside the caller's
	// transaction, positions assigned in slice order.
	SeedTx(ctx context.Context, tx *sql.Tx, projectID uuid.UUID, seeds []Seed) error

	// Watch subscribes to the project's change topic, delivering one message
	// per mutation until cancel is called.
	Watch(ctx context.Context, projectID uuid.UUID) (<-chan string, func(), error)
}
