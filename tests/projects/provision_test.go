package projects_test

import (
	"errors"
	"testing"

	"github.com/surjithprasanna/proz-portal/internal/projects"
	"github.com/surjithprasanna/proz-portal/internal/requests"
)

func TestSanitizeProvision(t *testing.T) {
	progress := 40
	outOfRange := 120

	tests := []struct {
		name        string
		cmd         projects.ProvisionCommand
		wantErr     error
		wantClient  string
		wantProject string
	}{
		{
			name:        "trims names",
			cmd:         projects.ProvisionCommand{ClientName: "  Ada Lovelace  ", ProjectName: "  CRM Rebuild  "},
			wantClient:  "Ada Lovelace",
			wantProject: "CRM Rebuild",
		},
		{
			name:        "blank project name falls back",
			cmd:         projects.ProvisionCommand{ClientName: "Ada", ProjectName: "   "},
			wantClient:  "Ada",
			wantProject: requests.UntitledProject,
		},
		{
			name:    "client name required",
			cmd:     projects.ProvisionCommand{ClientName: "   ", ProjectName: "CRM"},
			wantErr: projects.ErrMissingClientName,
		},
		{
			name:        "progress in range",
			cmd:         projects.ProvisionCommand{ClientName: "Ada", ProjectName: "CRM", Progress: &progress},
			wantClient:  "Ada",
			wantProject: "CRM",
		},
		{
			name:    "progress out of range",
			cmd:     projects.ProvisionCommand{ClientName: "Ada", ProjectName: "CRM", Progress: &outOfRange},
			wantErr: projects.ErrInvalidProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := projects.SanitizeProvision(tt.cmd)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SanitizeProvision error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeProvision: %v", err)
			}

			if got.ClientName != tt.wantClient {
				t.Errorf("client name = %q, want %q", got.ClientName, tt.wantClient)
			}
			if got.ProjectName != tt.wantProject {
				t.Errorf("project name = %q, want %q", got.ProjectName, tt.wantProject)
			}
		})
	}
}

func TestProvisionErrorMapping(t *testing.T) {
	if got := projects.MapHTTPStatus(projects.ErrMissingClientName); got != 400 {
		t.Errorf("MapHTTPStatus(ErrMissingClientName) = %d, want 400", got)
	}
}
