package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/pkg/pagination"
)

// System defines the public contract for project operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Project], error)
	Find(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindByClient returns the client's most recent project.
	FindByClient(ctx context.Context, clientID uuid.UUID) (*Project, error)

	// Convert turns a request into a project: identity ensured first, then
	// one transaction creating the project, seeding the default phases, and
	// marking the request converted. Fails with requests.ErrAlreadyConverted
	// on a request that was already converted.
	Convert(ctx context.Context, cmd ConvertCommand) (*Project, error)

	// Provision creates an identity and its first project from admin-entered
	// fields, with no source request. The project transaction also seeds the
	// default phases.
	Provision(ctx context.Context, cmd ProvisionCommand) (*ProvisionResult, error)

	// Update applies a partial patch of name, status, progress, price, or
	// pricing plan.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Project, error)
}
