package requests

import (
	"strings"
)

// UntitledProject is stored when a submission has no usable project name.
const UntitledProject = "Untitled Project"

// organizationTypes maps the free-text profession to a coarse classification.
// Anything unrecognized falls back to "startup".
var organizationTypes = map[string]string{
	"Student":        "student",
	"Founder":        "startup",
	"Business Owner": "business",
	"Professional":   "business",
}

// OrganizationType derives the coarse organization classification from a
// profession value.
func OrganizationType(profession string) string {
	if org, ok := organizationTypes[strings.TrimSpace(profession)]; ok {
		return org
	}
	return "startup"
}

// Sanitized is a SubmitCommand after trimming and normalization, ready for
// persistence. Optional fields are nil when absent, never empty strings.
type Sanitized struct {
	RequesterName    string
	Email            string
	Phone            string
	Profession       string
	OrganizationType string
	College          *string
	Degree           *string
	ProjectField     string
	Description      *string
	Links            *string
	BudgetRange      *string
	Deadline         *string
	Attachments      []Attachment
}

// Sanitize validates and normalizes an intake submission. Required fields
// (name, email, phone, profession) must be non-blank after trimming.
func Sanitize(cmd SubmitCommand) (Sanitized, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	phone := strings.TrimSpace(cmd.Phone)
	profession := strings.TrimSpace(cmd.Profession)

	switch {
	case name == "":
		return Sanitized{}, missingField("name")
	case email == "":
		return Sanitized{}, missingField("email")
	case !strings.Contains(email, "@"):
		return Sanitized{}, invalidField("email")
	case phone == "":
		return Sanitized{}, missingField("phone")
	case profession == "":
		return Sanitized{}, missingField("profession")
	}

	projectField := strings.TrimSpace(cmd.ProjectName)
	if projectField == "" {
		projectField = UntitledProject
	}

	attachments := cmd.Attachments
	if attachments == nil {
		attachments = []Attachment{}
	}

	return Sanitized{
		RequesterName:    name,
		Email:            email,
		Phone:            phone,
		Profession:       profession,
		OrganizationType: OrganizationType(profession),
		College:          optional(cmd.College),
		Degree:           optional(cmd.Degree),
		ProjectField:     projectField,
		Description:      optional(cmd.Description),
		Links:            optional(cmd.Links),
		BudgetRange:      optional(cmd.BudgetRange),
		Deadline:         optional(cmd.Deadline),
		Attachments:      attachments,
	}, nil
}

// optional trims the value and returns nil for blank input so the column
// is stored as NULL rather than an empty-string sentinel.
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
