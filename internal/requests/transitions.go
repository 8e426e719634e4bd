package requests

import "slices"

// proposalTransitions is the allowed proposal-status state machine. The
// empty-string key stands for the absent (NULL) starting state before any
// proposal is issued. Rejected and proposal_ready are terminal.
var proposalTransitions = map[string][]string{
	"":                   {ProposalQuoted},
	ProposalQuoted:       {ProposalModification, ProposalRejected, ProposalReady},
	ProposalModification: {ProposalQuoted, ProposalRejected},
}

// CanTransition reports whether a proposal may move from its current status
// to the target status.
func CanTransition(from *string, to string) bool {
	current := ""
	if from != nil {
		current = *from
	}
	return slices.Contains(proposalTransitions[current], to)
}
