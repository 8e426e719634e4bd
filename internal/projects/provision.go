package projects

import (
	"strings"

	"github.com/surjithprasanna/proz-portal/internal/clients"
	"github.com/surjithprasanna/proz-portal/internal/requests"
)

// ProvisionCommand creates a client identity and its first project from
// admin-entered fields, with no source request. AccessCode may be empty, in
// which case one is generated.
type ProvisionCommand struct {
	ClientName  string  `json:"client_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	AccessCode  string  `json:"access_code"`
	ProjectName string  `json:"project_name"`
	Price       *string `json:"price"`
	PricingPlan *string `json:"pricing_plan"`
	Progress    *int    `json:"progress"`
}

// ProvisionResult carries the ensured identity and the created project. The
// client includes the access code so a generated one can be handed to the
// client.
type ProvisionResult struct {
	Client  *clients.Client `json:"client"`
	Project *Project        `json:"project"`
}

// SanitizeProvision validates and normalizes admin-entered provisioning
// fields. The client name is required; a blank project name falls back to
// the untitled placeholder, matching intake.
func SanitizeProvision(cmd ProvisionCommand) (ProvisionCommand, error) {
	cmd.ClientName = strings.TrimSpace(cmd.ClientName)
	if cmd.ClientName == "" {
		return cmd, ErrMissingClientName
	}

	cmd.ProjectName = strings.TrimSpace(cmd.ProjectName)
	if cmd.ProjectName == "" {
		cmd.ProjectName = requests.UntitledProject
	}

	if cmd.Progress != nil && (*cmd.Progress < 0 || *cmd.Progress > 100) {
		return cmd, ErrInvalidProgress
	}

	return cmd, nil
}
