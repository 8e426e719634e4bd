package projects

import (
	"net/url"

	"github.com/surjithprasanna/proz-portal/pkg/query"
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "projects", "p").
	Project("id", "ID").
	Project("client_id", "ClientID").
	Project("name", "Name").
	Project("status", "Status").
	Project("progress", "Progress").
	Project("price", "Price").
	Project("pricing_plan", "PricingPlan").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// projectColumns is the full column list for RETURNING clauses on writes.
const projectColumns = `id, client_id, name, status, progress, price, pricing_plan,
		created_at, updated_at`

// Filters contains optional filtering criteria for project queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Status   *string `json:"status,omitempty"`
	ClientID *string `json:"client_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("ClientID", f.ClientID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if c := values.Get("client_id"); c != "" {
		f.ClientID = &c
	}

	return f
}

func scanProject(s repository.Scanner) (Project, error) {
	var p Project
	err := s.Scan(
		&p.ID,
		&p.ClientID,
		&p.Name,
		&p.Status,
		&p.Progress,
		&p.Price,
		&p.PricingPlan,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
