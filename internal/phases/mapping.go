package phases

import (
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

// phaseColumns is the full column list for RETURNING clauses and reads.
// Phase queries are always scoped to one project and ordered by position,
// so they skip the paginated query builder.
const phaseColumns = `id, project_id, name, description, status, order_index,
		created_at, updated_at`

func scanPhase(s repository.Scanner) (Phase, error) {
	var p Phase
	err := s.Scan(
		&p.ID,
		&p.ProjectID,
		&p.Name,
		&p.Description,
		&p.Status,
		&p.OrderIndex,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
