package projects

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/internal/clients"
	"github.com/surjithprasanna/proz-portal/internal/phases"
	"github.com/surjithprasanna/proz-portal/internal/requests"
	"github.com/surjithprasanna/proz-portal/pkg/metrics"
	"github.com/surjithprasanna/proz-portal/pkg/pagination"
	"github.com/surjithprasanna/proz-portal/pkg/query"
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

type repo struct {
	db         *sql.DB
	requests   requests.System
	clients    clients.System
	phases     phases.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a project repository implementing the System interface.
func New(
	db *sql.DB,
	requests requests.System,
	clients clients.System,
	phases phases.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		requests:   requests,
		clients:    clients,
		phases:     phases,
		logger:     logger.With("system", "projects"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Project], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Status")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProject)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Project, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProject)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) FindByClient(ctx context.Context, clientID uuid.UUID) (*Project, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, projectColumns)

	p, err := repository.QueryOne(ctx, r.db, q, []any{clientID}, scanProject)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Convert(ctx context.Context, cmd ConvertCommand) (*Project, error) {
	req, err := r.requests.Find(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if req.Status == requests.StatusConverted {
		return nil, requests.ErrAlreadyConverted
	}

	clientID, err := r.resolveClient(ctx, req, cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve client identity: %w", err)
	}

	name := req.ProjectField
	if cmd.Name != nil && strings.TrimSpace(*cmd.Name) != "" {
		name = strings.TrimSpace(*cmd.Name)
	}

	progress := 0
	if cmd.Progress != nil {
		if *cmd.Progress < 0 || *cmd.Progress > 100 {
			return nil, ErrInvalidProgress
		}
		progress = *cmd.Progress
	}

	p, err := r.createProject(ctx, clientID, name, progress, req.ProposalPrice, req.ProposalPlan,
		func(tx *sql.Tx, _ *Project) error {
			return r.requests.MarkConverted(ctx, tx, req.ID, clientID)
		})
	if err != nil {
		return nil, err
	}

	metrics.RequestsConverted.Inc()

	r.logger.Info("request converted",
		"request_id", req.ID,
		"project_id", p.ID,
		"client_id", clientID,
	)
	return p, nil
}

func (r *repo) Provision(ctx context.Context, cmd ProvisionCommand) (*ProvisionResult, error) {
	cmd, err := SanitizeProvision(cmd)
	if err != nil {
		return nil, err
	}

	cl, created, err := r.clients.Ensure(ctx, clients.CreateCommand{
		AccessCode:  cmd.AccessCode,
		DisplayName: cmd.ClientName,
		Email:       cmd.Email,
		Phone:       cmd.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("provision client identity: %w", err)
	}

	progress := 0
	if cmd.Progress != nil {
		progress = *cmd.Progress
	}

	p, err := r.createProject(ctx, cl.ID, cmd.ProjectName, progress,
		cmd.Price, cmd.PricingPlan, nil)
	if err != nil {
		return nil, err
	}

	r.logger.Info("client project provisioned",
		"project_id", p.ID,
		"client_id", cl.ID,
		"client_created", created,
	)
	return &ProvisionResult{Client: cl, Project: p}, nil
}

// createProject inserts the project row and seeds the default phases in one
// transaction. A non-nil link runs inside the same transaction after the
// insert.
func (r *repo) createProject(
	ctx context.Context,
	clientID uuid.UUID,
	name string,
	progress int,
	price, plan *string,
	link func(tx *sql.Tx, proj *Project) error,
) (*Project, error) {
	insertQ := fmt.Sprintf(`
		INSERT INTO projects(id, client_id, name, status, progress, price, pricing_plan)
		VALUES ($1, $2, $3, 'Discovery', $4, $5, $6)
		RETURNING %s`, projectColumns)

	insertArgs := []any{uuid.New(), clientID, name, progress, price, plan}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		proj, err := repository.QueryOne(ctx, tx, insertQ, insertArgs, scanProject)
		if err != nil {
			return Project{}, fmt.Errorf("insert project: %w", err)
		}

		if err := r.phases.SeedTx(ctx, tx, proj.ID, DefaultPhases); err != nil {
			return Project{}, err
		}

		if link != nil {
			if err := link(tx, &proj); err != nil {
				return Project{}, err
			}
		}

		return proj, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Project, error) {
	if cmd.Status != nil && !ValidStatus(*cmd.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *cmd.Status)
	}

	if cmd.Progress != nil && (*cmd.Progress < 0 || *cmd.Progress > 100) {
		return nil, ErrInvalidProgress
	}

	updateQ := fmt.Sprintf(`
		UPDATE projects
		SET name = COALESCE($1, name),
			status = COALESCE($2, status),
			progress = COALESCE($3, progress),
			price = COALESCE($4, price),
			pricing_plan = COALESCE($5, pricing_plan),
			updated_at = NOW()
		WHERE id = $6
		RETURNING %s`, projectColumns)

	p, err := repository.QueryOne(ctx, r.db, updateQ,
		[]any{cmd.Name, cmd.Status, cmd.Progress, cmd.Price, cmd.PricingPlan, id},
		scanProject,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project updated",
		"id", p.ID,
		"status", p.Status,
		"progress", p.Progress,
	)
	return &p, nil
}

// resolveClient returns the identity to own the converted project: the one
// already linked to the request, or one ensured from the available access
// code (a fresh code is generated when none was ever assigned).
func (r *repo) resolveClient(ctx context.Context, req *requests.ProjectRequest, cmd ConvertCommand) (uuid.UUID, error) {
	if req.ClientID != nil {
		return *req.ClientID, nil
	}

	accessCode := ""
	if req.AccessCode != nil {
		accessCode = *req.AccessCode
	}
	if cmd.AccessCode != nil {
		accessCode = *cmd.AccessCode
	}

	client, _, err := r.clients.Ensure(ctx, clients.CreateCommand{
		AccessCode:  accessCode,
		DisplayName: req.RequesterName,
		Email:       &req.Email,
		Phone:       &req.Phone,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return client.ID, nil
}
