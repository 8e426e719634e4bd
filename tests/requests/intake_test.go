package requests_test

import (
	"errors"
	"testing"

	"github.com/surjithprasanna/proz-portal/internal/requests"
)

func validSubmit() requests.SubmitCommand {
	return requests.SubmitCommand{
		Name:       "Priya Raman",
		Email:      "priya@example.com",
		Phone:      "+91 98765 43210",
		Profession: "Founder",
	}
}

func TestSubmitRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*requests.SubmitCommand)
	}{
		{"missing name", func(c *requests.SubmitCommand) { c.Name = "  " }},
		{"missing email", func(c *requests.SubmitCommand) { c.Email = "" }},
		{"malformed email", func(c *requests.SubmitCommand) { c.Email = "not-an-email" }},
		{"missing phone", func(c *requests.SubmitCommand) { c.Phone = "\t" }},
		{"missing profession", func(c *requests.SubmitCommand) { c.Profession = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validSubmit()
			tt.mutate(&cmd)

			if _, err := requests.Sanitize(cmd); !errors.Is(err, requests.ErrValidation) {
				t.Errorf("Sanitize() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSubmitProjectNameFallback(t *testing.T) {
	cmd := validSubmit()
	cmd.ProjectName = "   "

	s, err := requests.Sanitize(cmd)
	if err != nil {
		t.Fatalf("Sanitize() failed: %v", err)
	}
	if s.ProjectField != requests.UntitledProject {
		t.Errorf("ProjectField = %q, want %q", s.ProjectField, requests.UntitledProject)
	}
}

func TestSubmitTrimsAndNullsOptionalFields(t *testing.T) {
	cmd := validSubmit()
	cmd.Name = "  Priya Raman  "
	cmd.ProjectName = " Inventory Tracker "
	cmd.College = "   "
	cmd.Description = "  needs a mobile app  "

	s, err := requests.Sanitize(cmd)
	if err != nil {
		t.Fatalf("Sanitize() failed: %v", err)
	}

	if s.RequesterName != "Priya Raman" {
		t.Errorf("RequesterName = %q", s.RequesterName)
	}
	if s.ProjectField != "Inventory Tracker" {
		t.Errorf("ProjectField = %q", s.ProjectField)
	}
	if s.College != nil {
		t.Errorf("College = %v, want nil for blank input", *s.College)
	}
	if s.Description == nil || *s.Description != "needs a mobile app" {
		t.Errorf("Description = %v", s.Description)
	}
	if s.Attachments == nil {
		t.Error("Attachments should default to empty slice, not nil")
	}
}

func TestOrganizationTypeMapping(t *testing.T) {
	tests := []struct {
		profession string
		want       string
	}{
		{"Student", "student"},
		{"Founder", "startup"},
		{"Business Owner", "business"},
		{"Professional", "business"},
		{"  Student  ", "student"},
		{"Freelancer", "startup"},
		{"", "startup"},
	}

	for _, tt := range tests {
		t.Run(tt.profession, func(t *testing.T) {
			if got := requests.OrganizationType(tt.profession); got != tt.want {
				t.Errorf("OrganizationType(%q) = %q, want %q", tt.profession, got, tt.want)
			}
		})
	}
}
