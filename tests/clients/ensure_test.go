package clients_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/internal/clients"
)

type fakeStore struct {
	identities map[string]*clients.Client
	lookups    int
	provisions int
}

func newFakeStore() *fakeStore {
	return &fakeStore{identities: map[string]*clients.Client{}}
}

func (f *fakeStore) FindByLoginEmail(_ context.Context, loginEmail string) (*clients.Client, error) {
	f.lookups++
	if cl, ok := f.identities[loginEmail]; ok {
		return cl, nil
	}
	return nil, clients.ErrNotFound
}

func (f *fakeStore) Provision(_ context.Context, cred clients.IssuedCredential, cmd clients.CreateCommand) (*clients.Client, error) {
	f.provisions++
	cl := &clients.Client{
		ID:          uuid.New(),
		DisplayName: cmd.DisplayName,
		AccessCode:  cred.AccessCode,
		LoginEmail:  cred.LoginEmail,
	}
	f.identities[cred.LoginEmail] = cl
	return cl, nil
}

func issued(t *testing.T, code string) clients.IssuedCredential {
	t.Helper()

	cred, err := clients.IssueCredential(code, "prozspace.com")
	if err != nil {
		t.Fatalf("IssueCredential(%q): %v", code, err)
	}
	return cred
}

func TestEnsureIdentityCreatesWhenAbsent(t *testing.T) {
	store := newFakeStore()
	cred := issued(t, "PROZ-AB12")

	cl, created, err := clients.EnsureIdentity(context.Background(), store, cred,
		clients.CreateCommand{DisplayName: "Ada"})
	if err != nil {
		t.Fatalf("EnsureIdentity: %v", err)
	}
	if !created {
		t.Error("created = false, want true for absent identity")
	}
	if cl.LoginEmail != cred.LoginEmail {
		t.Errorf("login email = %q, want %q", cl.LoginEmail, cred.LoginEmail)
	}
	if store.provisions != 1 {
		t.Errorf("provisions = %d, want 1", store.provisions)
	}
}

func TestEnsureIdentityReusesExisting(t *testing.T) {
	store := newFakeStore()
	cred := issued(t, "PROZ-AB12")
	cmd := clients.CreateCommand{DisplayName: "Ada"}

	first, _, err := clients.EnsureIdentity(context.Background(), store, cred, cmd)
	if err != nil {
		t.Fatalf("first EnsureIdentity: %v", err)
	}

	second, created, err := clients.EnsureIdentity(context.Background(), store, cred, cmd)
	if err != nil {
		t.Fatalf("second EnsureIdentity: %v", err)
	}
	if created {
		t.Error("created = true on second ensure, want reuse")
	}
	if second.ID != first.ID {
		t.Errorf("second ensure returned identity %s, want %s", second.ID, first.ID)
	}
	if store.provisions != 1 {
		t.Errorf("provisions = %d after two ensures of one access code, want 1", store.provisions)
	}
}

// raceStore misses the first lookup, rejects the provision as a duplicate,
// and serves the winner on the retry lookup.
type raceStore struct {
	winner  *clients.Client
	lookups int
}

func (s *raceStore) FindByLoginEmail(_ context.Context, _ string) (*clients.Client, error) {
	s.lookups++
	if s.lookups == 1 {
		return nil, clients.ErrNotFound
	}
	return s.winner, nil
}

func (s *raceStore) Provision(_ context.Context, _ clients.IssuedCredential, _ clients.CreateCommand) (*clients.Client, error) {
	return nil, clients.ErrDuplicate
}

func TestEnsureIdentityLosesInsertRace(t *testing.T) {
	cred := issued(t, "PROZ-AB12")
	winner := &clients.Client{ID: uuid.New(), LoginEmail: cred.LoginEmail}
	store := &raceStore{winner: winner}

	cl, created, err := clients.EnsureIdentity(context.Background(), store, cred,
		clients.CreateCommand{DisplayName: "Ada"})
	if err != nil {
		t.Fatalf("EnsureIdentity after lost race: %v", err)
	}
	if created {
		t.Error("created = true, want false when the concurrent insert won")
	}
	if cl.ID != winner.ID {
		t.Errorf("returned identity %s, want race winner %s", cl.ID, winner.ID)
	}
	if store.lookups != 2 {
		t.Errorf("lookups = %d, want 2 (miss then retry)", store.lookups)
	}
}

type failingStore struct {
	err error
}

func (s *failingStore) FindByLoginEmail(_ context.Context, _ string) (*clients.Client, error) {
	return nil, s.err
}

func (s *failingStore) Provision(_ context.Context, _ clients.IssuedCredential, _ clients.CreateCommand) (*clients.Client, error) {
	return nil, errors.New("unreachable")
}

func TestEnsureIdentityPropagatesLookupError(t *testing.T) {
	want := errors.New("connection reset")
	store := &failingStore{err: want}

	_, _, err := clients.EnsureIdentity(context.Background(), store,
		issued(t, "PROZ-AB12"), clients.CreateCommand{})
	if !errors.Is(err, want) {
		t.Errorf("EnsureIdentity error = %v, want %v", err, want)
	}
}
