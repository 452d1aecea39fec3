// Package harness runs YAML-defined conformance scenarios against the
// full classify/split/validate/assemble pipeline.
//
// A scenario states an input line sequence and the expected shape of
// the reconstruction: subtable and row counts, flag codes, diagnostic
// count. Scenario files keep the conformance suite readable by
// non-programmers (federation staff can read and extend the fixtures),
// and golden files pin the exact report for regression comparison.
package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/cutsheet/internal/assemble"
	"github.com/roach88/cutsheet/internal/profile"
	"github.com/roach88/cutsheet/internal/standard"
)

// Scenario defines one conformance scenario.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Lines is the input line sequence, one entry per visual row.
	Lines []string `yaml:"lines"`

	// Expect states the expected reconstruction shape.
	Expect Expectation `yaml:"expect"`

	// RunID is a fixed run identifier for deterministic golden
	// comparison. Defaults to "run-" + Name.
	RunID string `yaml:"run_id,omitempty"`
}

// Expectation is the expected shape of a reconstruction.
type Expectation struct {
	Subtables   int      `yaml:"subtables"`
	Rows        int      `yaml:"rows"`
	Flags       []string `yaml:"flags,omitempty"`       // expected flag codes, in row order
	Diagnostics int      `yaml:"diagnostics,omitempty"` // expected unparseable-line count
}

// LoadScenario reads one scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	return &s, nil
}

// Result is the outcome of running a scenario.
type Result struct {
	Pass     bool               `json:"pass"`
	Errors   []string           `json:"errors,omitempty"`
	Document *standard.Document `json:"document"`
}

// AddError records a mismatch and marks the result failed.
func (r *Result) AddError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// Run executes a scenario and checks its expectations.
func Run(s *Scenario) *Result {
	runID := s.RunID
	if runID == "" {
		runID = "run-" + s.Name
	}

	doc := assemble.Assemble(s.Lines, profile.Default(), assemble.FixedGenerator{ID: runID})
	result := &Result{Pass: true, Document: doc}

	if got := len(doc.Subtables); got != s.Expect.Subtables {
		result.AddError("subtables: got %d, want %d", got, s.Expect.Subtables)
	}
	if got := doc.RowCount(); got != s.Expect.Rows {
		result.AddError("rows: got %d, want %d", got, s.Expect.Rows)
	}
	if got := len(doc.Diagnostics); got != s.Expect.Diagnostics {
		result.AddError("diagnostics: got %d, want %d", got, s.Expect.Diagnostics)
	}

	var gotFlags []string
	for _, st := range doc.Subtables {
		for _, row := range st.Rows {
			for _, f := range row.Flags {
				gotFlags = append(gotFlags, string(f.Code))
			}
		}
	}
	if !equalStrings(gotFlags, s.Expect.Flags) {
		result.AddError("flags: got %v, want %v", gotFlags, s.Expect.Flags)
	}

	return result
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
