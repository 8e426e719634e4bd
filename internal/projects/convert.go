package projects

import (
	"github.com/surjithprasanna/proz-portal/internal/phases"
)

// DefaultPhases is the phase plan seeded into every converted project,
// in order_index order. The first phase starts processing; the rest wait.
var DefaultPhases = []phases.Seed{
	{
		Name:        "System Architecture Analysis",
		Description: "Requirements breakdown and technical architecture design",
		Status:      phases.StatusProcessing,
	},
	{
		Name:        "UI/UX Design & Prototyping",
		Description: "Wireframes, visual design, and interactive prototypes",
		Status:      phases.StatusPending,
	},
	{
		Name:        "Core Development",
		Description: "Implementation of the application and its integrations",
		Status:      phases.StatusPending,
	},
	{
		Name:        "Quality Assurance & Testing",
		Description: "Functional, regression, and acceptance testing",
		Status:      phases.StatusPending,
	},
	{
		Name:        "Production Deployment",
		Description: "Release, monitoring setup, and handover",
		Status:      phases.StatusPending,
	},
}
