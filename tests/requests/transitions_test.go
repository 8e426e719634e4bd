package requests_test

import (
	"testing"

	"github.com/surjithprasanna/proz-portal/internal/requests"
)

func status(s string) *string { return &s }

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from *string
		to   string
		want bool
	}{
		{"none to quoted", nil, requests.ProposalQuoted, true},
		{"none to ready", nil, requests.ProposalReady, false},
		{"none to rejected", nil, requests.ProposalRejected, false},
		{"quoted to modification", status(requests.ProposalQuoted), requests.ProposalModification, true},
		{"quoted to rejected", status(requests.ProposalQuoted), requests.ProposalRejected, true},
		{"quoted to ready", status(requests.ProposalQuoted), requests.ProposalReady, true},
		{"quoted to quoted", status(requests.ProposalQuoted), requests.ProposalQuoted, false},
		{"modification back to quoted", status(requests.ProposalModification), requests.ProposalQuoted, true},
		{"modification to rejected", status(requests.ProposalModification), requests.ProposalRejected, true},
		{"modification to ready", status(requests.ProposalModification), requests.ProposalReady, false},
		{"rejected is terminal", status(requests.ProposalRejected), requests.ProposalQuoted, false},
		{"ready is terminal", status(requests.ProposalReady), requests.ProposalModification, false},
		{"unknown target", status(requests.ProposalQuoted), "negotiating", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requests.CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%v, %q) = %v, want %v",
					tt.from, tt.to, got, tt.want)
			}
		})
	}
}
