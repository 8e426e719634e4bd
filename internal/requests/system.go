package requests

import (
	"context"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/pkg/pagination"
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

// System defines the public contract for project request operations.
type System interface {
	Handler() *Handler

	// Submit accepts a public intake submission: sanitized, persisted with
	// status pending, and relayed to the notification endpoint best-effort.
	Submit(ctx context.Context, cmd SubmitCommand) (*ProjectRequest, error)

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[ProjectRequest], error)
	Find(ctx context.Context, id uuid.UUID) (*ProjectRequest, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]ProjectRequest, error)

	// SubmitProposal issues a proposal on a pending or contacted request.
	// A client identity for the access code is provisioned (or reused) first;
	// the request row is untouched when provisioning fails.
	SubmitProposal(ctx context.Context, id uuid.UUID, cmd ProposalCommand) (*ProjectRequest, error)

	// UpdateProposal patches an issued proposal and returns it to quoted.
	UpdateProposal(ctx context.Context, id uuid.UUID, cmd UpdateProposalCommand) (*ProjectRequest, error)

	// Client proposal actions. clientID must own the request.
	AcceptProposal(ctx context.Context, id, clientID uuid.UUID) (*ProjectRequest, error)
	RequestModification(ctx context.Context, id, clientID uuid.UUID) (*ProjectRequest, error)
	RejectProposal(ctx context.Context, id, clientID uuid.UUID) (*ProjectRequest, error)

	// MarkConverted finalizes a request inside a conversion transaction.
	// Exposed for the projects system; fails when already converted.
	MarkConverted(ctx context.Context, tx repository.Executor, id, clientID uuid.UUID) error
}
