package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/pkg/pagination"
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

const generateRetries = 5

type repo struct {
	db           *sql.DB
	clientDomain string
	logger       *slog.Logger
	pagination   pagination.Config
}

// New creates a client identity repository implementing the System interface.
// The clientDomain is the fixed suffix for derived login emails.
func New(
	db *sql.DB,
	clientDomain string,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:           db,
		clientDomain: clientDomain,
		logger:       logger.With("system", "clients"),
		pagination:   pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Client], error) {
	page.Normalize(r.pagination)

	countQ := "SELECT COUNT(*) FROM " + clientFrom
	var total int
	if err := r.db.QueryRowContext(ctx, countQ).Scan(&total); err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	listQ := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY p.created_at DESC LIMIT $1 OFFSET $2",
		clientColumns, clientFrom,
	)
	items, err := repository.QueryMany(ctx, r.db, listQ,
		[]any{page.PageSize, page.Offset()}, scanClient)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Client, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE p.id = $1", clientColumns, clientFrom)

	cl, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanClient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &cl, nil
}

func (r *repo) FindByLoginEmail(ctx context.Context, loginEmail string) (*Client, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE c.login_email = $1", clientColumns, clientFrom)

	cl, err := repository.QueryOne(ctx, r.db, q, []any{loginEmail}, scanClient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &cl, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Client, error) {
	cred, err := r.issueFor(ctx, cmd.AccessCode)
	if err != nil {
		return nil, err
	}

	if _, err := r.FindByLoginEmail(ctx, cred.LoginEmail); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return r.Provision(ctx, cred, cmd)
}

func (r *repo) Ensure(ctx context.Context, cmd CreateCommand) (*Client, bool, error) {
	cred, err := r.issueFor(ctx, cmd.AccessCode)
	if err != nil {
		return nil, false, err
	}

	return EnsureIdentity(ctx, r, cred, cmd)
}

func (r *repo) Login(ctx context.Context, cmd LoginCommand) (*Client, error) {
	code := NormalizeAccessCode(cmd.AccessCode)
	if code == "" {
		return nil, ErrLoginFailed
	}

	loginEmail := DeriveLoginEmail(code, r.clientDomain)

	var hash string
	if err := r.db.QueryRowContext(ctx,
		"SELECT password_hash FROM credentials WHERE login_email = $1",
		loginEmail,
	).Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLoginFailed
		}
		return nil, fmt.Errorf("lookup credential: %w", err)
	}

	if !VerifyAccessCode(code, hash) {
		return nil, ErrLoginFailed
	}

	cl, err := r.FindByLoginEmail(ctx, loginEmail)
	if err != nil {
		return nil, err
	}

	r.logger.Info("client login", "id", cl.ID)
	return cl, nil
}

// Provision inserts the credential row, then the profile row. A profile
// failure deletes the just-created credential so no orphaned login remains.
func (r *repo) Provision(ctx context.Context, cred IssuedCredential, cmd CreateCommand) (*Client, error) {
	credID := uuid.New()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO credentials(id, login_email, access_code, password_hash)
		 VALUES ($1, $2, $3, $4)`,
		credID, cred.LoginEmail, cred.AccessCode, cred.PasswordHash,
	)
	if err != nil {
		return nil, repository.MapError(
			fmt.Errorf("insert credential: %w", err), ErrNotFound, ErrDuplicate)
	}

	profileQ := `
		INSERT INTO profiles(id, credential_id, display_name, email, phone, role)
		VALUES ($1, $2, $3, $4, $5, 'client')
		RETURNING id, credential_id, display_name, email, phone, role, created_at, updated_at`

	var cl Client
	err = r.db.QueryRowContext(ctx, profileQ,
		uuid.New(), credID, cmd.DisplayName, cmd.Email, cmd.Phone,
	).Scan(
		&cl.ID, &cl.CredentialID, &cl.DisplayName, &cl.Email,
		&cl.Phone, &cl.Role, &cl.CreatedAt, &cl.UpdatedAt,
	)
	if err != nil {
		if _, delErr := r.db.ExecContext(ctx,
			"DELETE FROM credentials WHERE id = $1", credID,
		); delErr != nil {
			r.logger.Warn("compensating credential delete failed",
				"credential_id", credID, "error", delErr)
		}
		return nil, repository.MapError(
			fmt.Errorf("insert profile: %w", err), ErrNotFound, ErrDuplicate)
	}

	cl.AccessCode = cred.AccessCode
	cl.LoginEmail = cred.LoginEmail

	r.logger.Info("client provisioned",
		"id", cl.ID,
		"login_email", cl.LoginEmail,
	)
	return &cl, nil
}

// issueFor builds the credential for the supplied access code, generating a
// fresh code with collision retry when the admin did not assign one.
func (r *repo) issueFor(ctx context.Context, accessCode string) (IssuedCredential, error) {
	if NormalizeAccessCode(accessCode) != "" {
		return IssueCredential(accessCode, r.clientDomain)
	}

	for range generateRetries {
		cred, err := IssueCredential(GenerateAccessCode(), r.clientDomain)
		if err != nil {
			return IssuedCredential{}, err
		}

		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM credentials WHERE login_email = $1)",
			cred.LoginEmail,
		).Scan(&exists); err != nil {
			return IssuedCredential{}, fmt.Errorf("check access code: %w", err)
		}
		if !exists {
			return cred, nil
		}
	}

	return IssuedCredential{}, ErrCodeExhausted
}
