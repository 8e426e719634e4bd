package projects_test

import (
	"testing"

	"github.com/surjithprasanna/proz-portal/internal/phases"
	"github.com/surjithprasanna/proz-portal/internal/projects"
)

func TestDefaultPhasePlan(t *testing.T) {
	if len(projects.DefaultPhases) != 5 {
		t.Fatalf("DefaultPhases has %d entries, want 5", len(projects.DefaultPhases))
	}

	wantNames := []string{
		"System Architecture Analysis",
		"UI/UX Design & Prototyping",
		"Core Development",
		"Quality Assurance & Testing",
		"Production Deployment",
	}

	for i, seed := range projects.DefaultPhases {
		if seed.Name != wantNames[i] {
			t.Errorf("phase %d name = %q, want %q", i, seed.Name, wantNames[i])
		}

		wantStatus := phases.StatusPending
		if i == 0 {
			wantStatus = phases.StatusProcessing
		}
		if seed.Status != wantStatus {
			t.Errorf("phase %d status = %q, want %q", i, seed.Status, wantStatus)
		}

		if !phases.ValidStatus(seed.Status) {
			t.Errorf("phase %d status %q not in the allowed set", i, seed.Status)
		}
	}
}

func TestValidStatus(t *testing.T) {
	valid := []string{"Discovery", "Design", "Development", "Testing", "Deployed"}
	for _, s := range valid {
		if !projects.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "discovery", "Done", "In Progress"}
	for _, s := range invalid {
		if projects.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
