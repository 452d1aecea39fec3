package standard

// Line is one raw text line from the upstream extraction step.
// Lines are ephemeral: they are classified once and never revisited.
type Line struct {
	Text   string `json:"text"`
	Number int    `json:"number"`         // 1-based position in the input
	Page   int    `json:"page,omitempty"` // 0 when the source page is unknown
}

// Classification is the category assigned to a raw line.
type Classification int

const (
	// ClassNoise marks title lines, timestamps, page footers, and
	// all-whitespace lines. Noise never produces output.
	ClassNoise Classification = iota

	// ClassCutOrderHeader marks the fixed 13-label column header.
	ClassCutOrderHeader

	// ClassAgeGenderHeader marks a two-segment age/gender header.
	ClassAgeGenderHeader

	// ClassDataRowCandidate marks any remaining line, handed to the
	// cell splitter and row validator.
	ClassDataRowCandidate

	// ClassUnparseable marks a line that cannot be tokenized at all.
	// Reported as a diagnostic, never fatal.
	ClassUnparseable
)

// String returns the classification name for diagnostics.
func (c Classification) String() string {
	switch c {
	case ClassNoise:
		return "noise"
	case ClassCutOrderHeader:
		return "cut_order_header"
	case ClassAgeGenderHeader:
		return "age_gender_header"
	case ClassDataRowCandidate:
		return "data_row_candidate"
	case ClassUnparseable:
		return "unparseable"
	default:
		return "unknown"
	}
}

// Diagnostic records an unparseable line for the report.
type Diagnostic struct {
	Line int    `json:"line"`
	Page int    `json:"page,omitempty"`
	Text string `json:"text"`
}
