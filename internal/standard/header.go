package standard

import "fmt"

// CutLabels is the canonical 13-label cut-order sequence. The six
// labels left of "Event" descend in difficulty toward the center; the
// six on the right mirror them ascending.
var CutLabels = [13]string{
	"B", "BB", "A", "AA", "AAA", "AAAA",
	"Event",
	"AAAA", "AAA", "AA", "A", "BB", "B",
}

// EventLabelIndex is the position of "Event" within CutLabels.
const EventLabelIndex = 6

// CutOrderHeader records an occurrence of the cut-order column header.
// A new instance supersedes, never merges with, the previous one.
type CutOrderHeader struct {
	Labels []string `json:"labels"`
	Line   int      `json:"line"`
	Page   int      `json:"page,omitempty"`
}

// LeftLabels returns the six cut labels left of the event column.
func (h *CutOrderHeader) LeftLabels() []string {
	return h.Labels[:EventLabelIndex]
}

// RightLabels returns the six cut labels right of the event column.
func (h *CutOrderHeader) RightLabels() []string {
	return h.Labels[EventLabelIndex+1:]
}

// AgeKind distinguishes the age-descriptor forms.
type AgeKind string

const (
	AgeSingle AgeKind = "single" // "10"
	AgeRange  AgeKind = "range"  // "11-12"
	AgeUnder  AgeKind = "under"  // "10 & under"
	AgeOver   AgeKind = "over"   // "15 & over"
)

// AgeDescriptor is one parsed age descriptor.
// Low/High hold the stated bounds; AgeUnder leaves Low at 0 and
// AgeOver leaves High at 0 (unbounded).
type AgeDescriptor struct {
	Kind AgeKind `json:"kind"`
	Low  int     `json:"low,omitempty"`
	High int     `json:"high,omitempty"`
}

// String renders the descriptor in source form.
func (d AgeDescriptor) String() string {
	switch d.Kind {
	case AgeRange:
		return fmt.Sprintf("%d-%d", d.Low, d.High)
	case AgeUnder:
		return fmt.Sprintf("%d & under", d.High)
	case AgeOver:
		return fmt.Sprintf("%d & over", d.Low)
	default:
		return fmt.Sprintf("%d", d.Low)
	}
}

// AgeGroup is one header segment: an age descriptor plus a gender.
type AgeGroup struct {
	Age    AgeDescriptor `json:"age"`
	Gender string        `json:"gender"` // "Girls" or "Boys"
}

// String renders the segment in source form, e.g. "10 & under Girls".
func (g AgeGroup) String() string {
	return g.Age.String() + " " + g.Gender
}

// AgeGenderHeader records an occurrence of a two-segment age/gender
// header. Left governs the left time group, Right the right group.
// A new instance supersedes the previous one.
//
// The two segments may disagree on age descriptor; that is a document
// oddity surfaced via Mismatch, not a classification failure.
type AgeGenderHeader struct {
	Left  AgeGroup `json:"left"`
	Right AgeGroup `json:"right"`
	Line  int      `json:"line"`
	Page  int      `json:"page,omitempty"`
}

// Mismatch reports whether the two segments disagree on age.
func (h *AgeGenderHeader) Mismatch() bool {
	return h.Left.Age != h.Right.Age
}
