package standard

import "fmt"

// FlagCode categorizes validation findings.
type FlagCode string

const (
	// FlagWrongCellCount indicates the left/right groups around the
	// event cell do not contain exactly 6 cells each.
	FlagWrongCellCount FlagCode = "WRONG_CELL_COUNT"

	// FlagEmptyEventCell indicates no cell parsed as an event name, so
	// the row's column positions cannot be inferred.
	FlagEmptyEventCell FlagCode = "EMPTY_EVENT_CELL"

	// FlagAmbiguousEventCell indicates more than one cell parsed as an
	// event name.
	FlagAmbiguousEventCell FlagCode = "AMBIGUOUS_EVENT_CELL"

	// FlagLeftNotDescending indicates the left time group increases at
	// some index (ties are allowed).
	FlagLeftNotDescending FlagCode = "LEFT_NOT_DESCENDING"

	// FlagRightNotAscending indicates the right time group decreases at
	// some index (ties are allowed).
	FlagRightNotAscending FlagCode = "RIGHT_NOT_ASCENDING"

	// FlagMalformedTime indicates a non-empty cell that does not match
	// the time pattern.
	FlagMalformedTime FlagCode = "MALFORMED_TIME"

	// FlagMalformedEvent indicates the located event cell (or a cell
	// expected to be one) violates the 3-token event form.
	FlagMalformedEvent FlagCode = "MALFORMED_EVENT"

	// FlagOrphanRow indicates a data row encountered before any header
	// pair became active.
	FlagOrphanRow FlagCode = "ORPHAN_ROW"

	// FlagNonCanonicalDistance indicates an event distance outside the
	// canonical set. The event is accepted, not rejected.
	FlagNonCanonicalDistance FlagCode = "NONCANONICAL_DISTANCE"
)

// Flag is a validation finding attached to a row. Every flag carries
// its originating line (and page, if known); cell-level flags also
// carry the zero-based cell index.
type Flag struct {
	Code   FlagCode `json:"code"`
	Line   int      `json:"line"`
	Page   int      `json:"page,omitempty"`
	Cell   int      `json:"cell"` // zero-based index into the split cells; -1 when row-level
	Detail string   `json:"detail,omitempty"`
}

// String renders the flag for text diagnostics.
func (f Flag) String() string {
	if f.Cell >= 0 {
		return fmt.Sprintf("%s: line %d, cell %d: %s", f.Code, f.Line, f.Cell, f.Detail)
	}
	if f.Detail != "" {
		return fmt.Sprintf("%s: line %d: %s", f.Code, f.Line, f.Detail)
	}
	return fmt.Sprintf("%s: line %d", f.Code, f.Line)
}
