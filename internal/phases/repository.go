package phases

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/surjithprasanna/proz-portal/pkg/events"
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

type repo struct {
	db     *sql.DB
	events events.System
	logger *slog.Logger
}

// New creates a phase repository implementing the System interface.
func New(db *sql.DB, events events.System, logger *slog.Logger) System {
	return &repo{
		db:     db,
		events: events,
		logger: logger.With("system", "phases"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context, projectID uuid.UUID) ([]Phase, error) {
	listQ := fmt.Sprintf(
		"SELECT %s FROM project_phases WHERE project_id = $1 ORDER BY order_index",
		phaseColumns,
	)

	items, err := repository.QueryMany(ctx, r.db, listQ, []any{projectID}, scanPhase)
	if err != nil {
		return nil, fmt.Errorf("query phases: %w", err)
	}
	return items, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Phase, error) {
	q := fmt.Sprintf("SELECT %s FROM project_phases WHERE id = $1", phaseColumns)

	p, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanPhase)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Phase, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrMissingName
	}

	status := cmd.Status
	if status == "" {
		status = StatusPending
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	insertQ := fmt.Sprintf(`
		INSERT INTO project_phases(id, project_id, name, description, status, order_index)
		SELECT $1, $2, $3, $4, $5, COALESCE(MAX(order_index) + 1, 0)
		FROM project_phases WHERE project_id = $2
		RETURNING %s`, phaseColumns)

	insertArgs := []any{uuid.New(), cmd.ProjectID, cmd.Name, cmd.Description, status}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Phase, error) {
		return repository.QueryOne(ctx, tx, insertQ, insertArgs, scanPhase)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.publish(ctx, p.ProjectID)
	r.logger.Info("phase created",
		"id", p.ID,
		"project_id", p.ProjectID,
		"order_index", p.OrderIndex,
	)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Phase, error) {
	if cmd.Status != nil && !ValidStatus(*cmd.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *cmd.Status)
	}

	if cmd.Name != nil && strings.TrimSpace(*cmd.Name) == "" {
		return nil, ErrMissingName
	}

	updateQ := fmt.Sprintf(`
		UPDATE project_phases
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			status = COALESCE($3, status),
			updated_at = NOW()
		WHERE id = $4
		RETURNING %s`, phaseColumns)

	p, err := repository.QueryOne(ctx, r.db, updateQ,
		[]any{cmd.Name, cmd.Description, cmd.Status, id}, scanPhase)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.publish(ctx, p.ProjectID)
	r.logger.Info("phase updated", "id", p.ID, "status", p.Status)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	projectID, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (uuid.UUID, error) {
		var projectID uuid.UUID
		var orderIndex int
		err := tx.QueryRowContext(ctx,
			"DELETE FROM project_phases WHERE id = $1 RETURNING project_id, order_index",
			id,
		).Scan(&projectID, &orderIndex)
		if err != nil {
			return uuid.Nil, err
		}

		// Close the gap so order_index stays dense.
		_, err = tx.ExecContext(ctx,
			`UPDATE project_phases SET order_index = order_index - 1
			 WHERE project_id = $1 AND order_index > $2`,
			projectID, orderIndex,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("resequence phases: %w", err)
		}

		return projectID, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.publish(ctx, projectID)
	r.logger.Info("phase deleted", "id", id, "project_id", projectID)
	return nil
}

func (r *repo) SeedTx(ctx context.Context, tx *sql.Tx, projectID uuid.UUID, seeds []Seed) error {
	for i, seed := range seeds {
		if !ValidStatus(seed.Status) {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, seed.Status)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO project_phases(id, project_id, name, description, status, order_index)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), projectID, seed.Name, seed.Description, seed.Status, i,
		)
		if err != nil {
			return fmt.Errorf("seed phase %q: %w", seed.Name, err)
		}
	}
	return nil
}

func (r *repo) Watch(ctx context.Context, projectID uuid.UUID) (<-chan string, func(), error) {
	return r.events.Subscribe(ctx, topic(projectID))
}

// publish signals phase-plan changes on the project topic. Best effort:
// subscribers recover by refetching, so failures only log.
func (r *repo) publish(ctx context.Context, projectID uuid.UUID) {
	if err := r.events.Publish(ctx, topic(projectID), "phases-changed"); err != nil {
		r.logger.Warn("phase change publish failed",
			"project_id", projectID, "error", err)
	}
}

func topic(projectID uuid.UUID) string {
	return "phases:" + projectID.String()
}
