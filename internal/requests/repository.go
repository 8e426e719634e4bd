package requests

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/internal/clients"
	"github.com/surjithprasanna/proz-portal/internal/notify"
	"github.com/surjithprasanna/proz-portal/pkg/metrics"
	"github.com/surjithprasanna/proz-portal/pkg/pagination"
	"github.com/surjithprasanna/proz-portal/pkg/query"
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

type repo struct {
	db         *sql.DB
	clients    clients.System
	notifier   notify.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a project request repository implementing the System interface.
func New(
	db *sql.DB,
	clients clients.System,
	notifier notify.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		clients:    clients,
		notifier:   notifier,
		logger:     logger.With("system", "requests"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Submit(ctx context.Context, cmd SubmitCommand) (*ProjectRequest, error) {
	s, err := Sanitize(cmd)
	if err != nil {
		return nil, err
	}

	attachmentsJSON, err := json.Marshal(s.Attachments)
	if err != nil {
		return nil, fmt.Errorf("marshal attachments: %w", err)
	}

	insertQ := `
		INSERT INTO project_requests(
			id, requester_name, email, phone, profession, organization_type,
			college, degree, project_field, name, description, links,
			budget_range, deadline, attachments, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 'pending')
		RETURNING ` + requestColumns

	insertArgs := []any{
		uuid.New(),
		s.RequesterName,
		s.Email,
		s.Phone,
		s.Profession,
		s.OrganizationType,
		s.College,
		s.Degree,
		s.ProjectField,
		s.ProjectField,
		s.Description,
		s.Links,
		s.BudgetRange,
		s.Deadline,
		attachmentsJSON,
	}

	pr, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanRequest)
	if err != nil {
		return nil, repository.MapError(
			fmt.Errorf("insert request: %w", err), ErrNotFound, ErrDuplicate)
	}

	metrics.RequestsSubmitted.Inc()

	notify.SendAsync(r.notifier, r.logger, map[string]any{
		"subject":       "New project request",
		"name":          pr.RequesterName,
		"email":         pr.Email,
		"phone":         pr.Phone,
		"project_field": pr.ProjectField,
	})

	r.logger.Info("request submitted",
		"id", pr.ID,
		"organization_type", pr.OrganizationType,
	)
	return &pr, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[ProjectRequest], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "RequesterName", "Email", "ProjectField")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count requests: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRequest)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*ProjectRequest, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	pr, err := repository.QueryOne(ctx, r.db, q, args, scanRequest)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &pr, nil
}

func (r *repo) FindByClient(ctx context.Context, clientID uuid.UUID) ([]ProjectRequest, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("ClientID", clientID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanRequest)
	if err != nil {
		return nil, fmt.Errorf("query client requests: %w", err)
	}
	return items, nil
}

func (r *repo) SubmitProposal(ctx context.Context, id uuid.UUID, cmd ProposalCommand) (*ProjectRequest, error) {
	if strings.TrimSpace(cmd.Price) == "" {
		return nil, missingField("price")
	}
	if strings.TrimSpace(cmd.Plan) == "" {
		return nil, missingField("plan")
	}

	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(current.ProposalStatus, ProposalQuoted) {
		return nil, fmt.Errorf("%w: %s -> quoted",
			ErrInvalidTransition, proposalState(current.ProposalStatus))
	}

	// Identity first: a provisioning failure must leave the request untouched.
	client, created, err := r.clients.Ensure(ctx, clients.CreateCommand{
		AccessCode:  cmd.AccessCode,
		DisplayName: current.RequesterName,
		Email:       &current.Email,
		Phone:       &current.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("provision client identity: %w", err)
	}

	docsJSON, err := json.Marshal(normalizeDocs(cmd.Docs))
	if err != nil {
		return nil, fmt.Errorf("marshal proposal docs: %w", err)
	}

	updateQ := `
		UPDATE project_requests
		SET proposal_status = 'quoted', proposal_price = $1, proposal_plan = $2,
			proposal_docs = $3, access_code = $4, client_id = $5,
			status = 'contacted', updated_at = NOW()
		WHERE id = $6 AND status <> 'converted'
		RETURNING ` + requestColumns

	updateArgs := []any{cmd.Price, cmd.Plan, docsJSON, client.AccessCode, client.ID, id}

	pr, err := repository.QueryOne(ctx, r.db, updateQ, updateArgs, scanRequest)
	if err != nil {
		return nil, MapGuardedWrite(err)
	}

	r.logger.Info("proposal issued",
		"id", pr.ID,
		"client_id", client.ID,
		"client_created", created,
	)
	return &pr, nil
}

func (r *repo) UpdateProposal(ctx context.Context, id uuid.UUID, cmd UpdateProposalCommand) (*ProjectRequest, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	// Patching returns the proposal to quoted; only an open proposal
	// (quoted or modification_requested) may be patched.
	switch proposalState(current.ProposalStatus) {
	case ProposalQuoted, ProposalModification:
	default:
		return nil, fmt.Errorf("%w: %s -> quoted",
			ErrInvalidTransition, proposalState(current.ProposalStatus))
	}

	price := current.ProposalPrice
	if cmd.Price != nil {
		price = cmd.Price
	}

	plan := current.ProposalPlan
	if cmd.Plan != nil {
		plan = cmd.Plan
	}

	docs := current.ProposalDocs
	if cmd.Docs != nil {
		docs = normalizeDocs(cmd.Docs)
	}

	docsJSON, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal proposal docs: %w", err)
	}

	updateQ := `
		UPDATE project_requests
		SET proposal_status = 'quoted', proposal_price = $1, proposal_plan = $2,
			proposal_docs = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + requestColumns

	pr, err := repository.QueryOne(ctx, r.db, updateQ,
		[]any{price, plan, docsJSON, id}, scanRequest)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("proposal updated", "id", pr.ID)
	return &pr, nil
}

func (r *repo) AcceptProposal(ctx context.Context, id, clientID uuid.UUID) (*ProjectRequest, error) {
	return r.transition(ctx, id, clientID, ProposalReady)
}

func (r *repo) RequestModification(ctx context.Context, id, clientID uuid.UUID) (*ProjectRequest, error) {
	return r.transition(ctx, id, clientID, ProposalModification)
}

func (r *repo) RejectProposal(ctx context.Context, id, clientID uuid.UUID) (*ProjectRequest, error) {
	return r.transition(ctx, id, clientID, ProposalRejected)
}

// transition applies a client-side proposal status change after verifying
// ownership and the transition table.
func (r *repo) transition(ctx context.Context, id, clientID uuid.UUID, to string) (*ProjectRequest, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.ClientID == nil || *current.ClientID != clientID {
		return nil, ErrNotOwner
	}

	if !CanTransition(current.ProposalStatus, to) {
		return nil, fmt.Errorf("%w: %s -> %s",
			ErrInvalidTransition, proposalState(current.ProposalStatus), to)
	}

	updateQ := `
		UPDATE project_requests
		SET proposal_status = $1, updated_at = NOW()
		WHERE id = $2 AND client_id = $3
		RETURNING ` + requestColumns

	pr, err := repository.QueryOne(ctx, r.db, updateQ,
		[]any{to, id, clientID}, scanRequest)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("proposal transition",
		"id", pr.ID,
		"proposal_status", to,
	)
	return &pr, nil
}

func (r *repo) MarkConverted(ctx context.Context, tx repository.Executor, id, clientID uuid.UUID) error {
	err := repository.ExecExpectOne(
		ctx, tx,
		`UPDATE project_requests
		 SET status = 'converted', client_id = $1, updated_at = NOW()
		 WHERE id = $2 AND status <> 'converted'`,
		clientID, id,
	)
	if err != nil {
		return repository.MapError(err, ErrAlreadyConverted, ErrDuplicate)
	}
	return nil
}

func proposalState(s *string) string {
	if s == nil {
		return "none"
	}
	return *s
}

func normalizeDocs(docs []Attachment) []Attachment {
	if docs == nil {
		return []Attachment{}
	}
	return docs
}
