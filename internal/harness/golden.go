package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares the full report JSON
// against a golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Scenarios must use fixed run IDs (Run defaults them from the
// scenario name), otherwise the snapshot cannot be stable.
func RunWithGolden(t *testing.T, s *Scenario) *Result {
	t.Helper()

	result := Run(s)

	snapshot, err := json.MarshalIndent(result.Document, "", "  ")
	if err != nil {
		t.Fatalf("marshaling report: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, snapshot)

	return result
}
