package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/pkg/pagination"
)

// System defines the public contract for client identity operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Client], error)
	Find(ctx context.Context, id uuid.UUID) (*Client, error)
	FindByLoginEmail(ctx context.Context, loginEmail string) (*Client, error)

	// Create provisions a new identity: credential row then profile row,
	// deleting the credential if the profile insert fails. Fails with
	// ErrDuplicate when an identity already exists for the access code.
	Create(ctx context.Context, cmd CreateCommand) (*Client, error)

	// Ensure returns the identity for the command's access code, creating it
	// when absent. The boolean reports whether a new identity was created.
	// At most one identity ever exists per access code; losing a concurrent
	// insert race resolves to the winner's identity.
	Ensure(ctx context.Context, cmd CreateCommand) (*Client, bool, error)

	// Login verifies an access code and returns the matching client.
	Login(ctx context.Context, cmd LoginCommand) (*Client, error)
}
