package clients

import (
	"context"
	"errors"
)

// Store is the persistence surface the ensure flow coordinates: identity
// lookup by login email and provisioning of a new identity.
type Store interface {
	FindByLoginEmail(ctx context.Context, loginEmail string) (*Client, error)
	Provision(ctx context.Context, cred IssuedCredential, cmd CreateCommand) (*Client, error)
}

// EnsureIdentity returns the identity for the issued credential, creating it
// when absent. The boolean reports whether a new identity was created. A
// duplicate during provisioning means a concurrent caller won the insert
// race, so the lookup is retried once instead of surfacing the conflict.
func EnsureIdentity(
	ctx context.Context,
	store Store,
	cred IssuedCredential,
	cmd CreateCommand,
) (*Client, bool, error) {
	existing, err := store.FindByLoginEmail(ctx, cred.LoginEmail)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	cl, err := store.Provision(ctx, cred, cmd)
	if err == nil {
		return cl, true, nil
	}

	if errors.Is(err, ErrDuplicate) {
		winner, lookupErr := store.FindByLoginEmail(ctx, cred.LoginEmail)
		if lookupErr == nil {
			return winner, false, nil
		}
	}

	return nil, false, err
}
