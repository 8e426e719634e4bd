// Package requests implements the project-request domain for the portal:
// public intake of leads, admin proposal issuance, and the client-side
// accept / modify / reject actions on an issued proposal.
package requests

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle status of a request.
const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusConverted = "converted"
)

// Proposal status of a request. Absent (NULL) until a proposal is issued.
const (
	ProposalQuoted       = "quoted"
	ProposalModification = "modification_requested"
	ProposalRejected     = "rejected"
	ProposalReady        = "proposal_ready"
)

// Attachment references a file uploaded alongside an intake submission.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// ProjectRequest represents an intake lead and its proposal lifecycle.
// The legacy Name column mirrors ProjectField for older admin views.
type ProjectRequest struct {
	ID               uuid.UUID    `json:"id"`
	RequesterName    string       `json:"requester_name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Profession       string       `json:"profession"`
	OrganizationType string       `json:"organization_type"`
	College          *string      `json:"college"`
	Degree           *string      `json:"degree"`
	ProjectField     string       `json:"project_field"`
	Name             string       `json:"name"`
	Description      *string      `json:"description"`
	Links            *string      `json:"links"`
	BudgetRange      *string      `json:"budget_range"`
	Deadline         *string      `json:"deadline"`
	Attachments      []Attachment `json:"attachments"`
	Status           string       `json:"status"`
	ProposalStatus   *string      `json:"proposal_status"`
	ProposalPrice    *string      `json:"proposal_price"`
	ProposalPlan     *string      `json:"proposal_plan"`
	ProposalDocs     []Attachment `json:"proposal_docs"`
	AccessCode       *string      `json:"access_code"`
	ClientID         *uuid.UUID   `json:"client_id"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// SubmitCommand carries a public intake submission before sanitation.
type SubmitCommand struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Profession  string       `json:"profession"`
	College     string       `json:"college"`
	Degree      string       `json:"degree"`
	ProjectName string       `json:"project_name"`
	Description string       `json:"description"`
	Links       string       `json:"links"`
	BudgetRange string       `json:"budget_range"`
	Deadline    string       `json:"deadline"`
	Attachments []Attachment `json:"attachments"`
}

// ProposalCommand carries the data needed to issue a proposal on a request.
type ProposalCommand struct {
	Price      string       `json:"price"`
	Plan       string       `json:"plan"`
	AccessCode string       `json:"access_code"`
	Docs       []Attachment `json:"docs"`
}

// UpdateProposalCommand patches an issued proposal. Nil fields are untouched.
// Any update returns the proposal to the quoted state.
type UpdateProposalCommand struct {
	Price *string      `json:"price"`
	Plan  *string      `json:"plan"`
	Docs  []Attachment `json:"docs"`
}
