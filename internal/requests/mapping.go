package requests

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/surjithprasanna/proz-portal/pkg/query"
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "project_requests", "r").
	Project("id", "ID").
	Project("requester_name", "RequesterName").
	Project("email", "Email").
	Project("phone", "Phone").
	Project("profession", "Profession").
	Project("organization_type", "OrganizationType").
	Project("college", "College").
	Project("degree", "Degree").
	Project("project_field", "ProjectField").
	Project("name", "Name").
	Project("description", "Description").
	Project("links", "Links").
	Project("budget_range", "BudgetRange").
	Project("deadline", "Deadline").
	Project("attachments", "Attachments").
	Project("status", "Status").
	Project("proposal_status", "ProposalStatus").
	Project("proposal_price", "ProposalPrice").
	Project("proposal_plan", "ProposalPlan").
	Project("proposal_docs", "ProposalDocs").
	Project("access_code", "AccessCode").
	Project("client_id", "ClientID").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// requestColumns is the full column list for RETURNING clauses on writes.
const requestColumns = `id, requester_name, email, phone, profession, organization_type,
		college, degree, project_field, name, description, links, budget_range,
		deadline, attachments, status, proposal_status, proposal_price,
		proposal_plan, proposal_docs, access_code, client_id, created_at, updated_at`

// Filters contains optional filtering criteria for request queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Status           *string `json:"status,omitempty"`
	ProposalStatus   *string `json:"proposal_status,omitempty"`
	OrganizationType *string `json:"organization_type,omitempty"`
	Email            *string `json:"email,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("ProposalStatus", f.ProposalStatus).
		WhereEquals("OrganizationType", f.OrganizationType).
		WhereEquals("Email", f.Email)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if p := values.Get("proposal_status"); p != "" {
		f.ProposalStatus = &p
	}

	if o := values.Get("organization_type"); o != "" {
		f.OrganizationType = &o
	}

	if e := values.Get("email"); e != "" {
		f.Email = &e
	}

	return f
}

func scanRequest(s repository.Scanner) (ProjectRequest, error) {
	var pr ProjectRequest
	var attachmentsRaw, docsRaw []byte

	err := s.Scan(
		&pr.ID,
		&pr.RequesterName,
		&pr.Email,
		&pr.Phone,
		&pr.Profession,
		&pr.OrganizationType,
		&pr.College,
		&pr.Degree,
		&pr.ProjectField,
		&pr.Name,
		&pr.Description,
		&pr.Links,
		&pr.BudgetRange,
		&pr.Deadline,
		&attachmentsRaw,
		&pr.Status,
		&pr.ProposalStatus,
		&pr.ProposalPrice,
		&pr.ProposalPlan,
		&docsRaw,
		&pr.AccessCode,
		&pr.ClientID,
		&pr.CreatedAt,
		&pr.UpdatedAt,
	)

	if err != nil {
		return pr, err
	}

	if len(attachmentsRaw) > 0 {
		if err := json.Unmarshal(attachmentsRaw, &pr.Attachments); err != nil {
			return pr, fmt.Errorf("unmarshal attachments: %w", err)
		}
	}

	if len(docsRaw) > 0 {
		if err := json.Unmarshal(docsRaw, &pr.ProposalDocs); err != nil {
			return pr, fmt.Errorf("unmarshal proposal_docs: %w", err)
		}
	}

	if pr.Attachments == nil {
		pr.Attachments = []Attachment{}
	}

	if pr.ProposalDocs == nil {
		pr.ProposalDocs = []Attachment{}
	}

	return pr, nil
}
