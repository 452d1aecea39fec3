// Package profile defines the document profile: the vocabulary a
// standards sheet is matched against (title lines, cut-label sequence,
// style and pool codes, canonical distances).
//
// Profiles are written in CUE so a federation can adjust the vocabulary
// for a new quadrennium without a rebuild. The embedded default profile
// covers the USA Swimming 2024-2028 sheets.
package profile

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/cutsheet/internal/standard"
)

//go:embed default.cue
var defaultCUE []byte

// Profile is the compiled document vocabulary.
type Profile struct {
	Titles             []string `json:"titles"`
	CutLabels          []string `json:"cut_labels"`
	Styles             []string `json:"styles"`
	Pools              []string `json:"pools"`
	CanonicalDistances []int    `json:"canonical_distances"`
}

// LoadError reports a profile that failed to compile or validate.
type LoadError struct {
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("profile %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("profile: %s", e.Message)
}

// Default returns the embedded USA Swimming profile.
// Panics only if the embedded CUE is corrupt, which is a build defect.
func Default() *Profile {
	p, err := compile(defaultCUE, "")
	if err != nil {
		panic(fmt.Sprintf("embedded default profile: %v", err))
	}
	return p
}

// Load compiles and validates a CUE profile file.
func Load(path string) (*Profile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: err.Error()}
	}
	return compile(src, path)
}

func compile(src []byte, path string) (*Profile, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(src)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("compiling CUE: %v", err)}
	}
	if err := value.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("validating CUE: %v", err)}
	}

	var p Profile
	if err := value.Decode(&p); err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("decoding profile: %v", err)}
	}
	if err := p.check(); err != nil {
		return nil, &LoadError{Path: path, Message: err.Error()}
	}
	return &p, nil
}

// check enforces the structural invariants the rest of the pipeline
// relies on.
func (p *Profile) check() error {
	if len(p.CutLabels) != len(standard.CutLabels) {
		return fmt.Errorf("cut_labels must have %d entries, got %d", len(standard.CutLabels), len(p.CutLabels))
	}
	if p.CutLabels[standard.EventLabelIndex] != "Event" {
		return fmt.Errorf("cut_labels[%d] must be %q, got %q",
			standard.EventLabelIndex, "Event", p.CutLabels[standard.EventLabelIndex])
	}
	if len(p.Styles) == 0 {
		return fmt.Errorf("styles must not be empty")
	}
	if len(p.Pools) == 0 {
		return fmt.Errorf("pools must not be empty")
	}
	if len(p.Titles) == 0 {
		return fmt.Errorf("titles must not be empty")
	}
	return nil
}

// Lexicon returns the event vocabulary for the cell parsers.
func (p *Profile) Lexicon() standard.EventLexicon {
	return standard.EventLexicon{
		Styles:             p.Styles,
		Pools:              p.Pools,
		CanonicalDistances: p.CanonicalDistances,
	}
}
