package standard

// Row is one reconstructed data row: six left standards, the event
// cell, six right standards, plus any validation flags. Rows reference
// the headers active at classification time; the enclosing Subtable
// owns the row, not the headers.
//
// A flagged row keeps whatever was recovered. Cells always holds the
// split source cells so a reviewer can see exactly what the validator
// saw.
type Row struct {
	Cells     []string       `json:"cells"`
	Line      int            `json:"line"`
	Page      int            `json:"page,omitempty"`
	Event     EventName      `json:"event"`
	EventCell int            `json:"event_cell"` // index into Cells; -1 when not located
	Left      []StandardTime `json:"left"`
	Right     []StandardTime `json:"right"`
	Flags     []Flag         `json:"flags,omitempty"`

	CutOrder  *CutOrderHeader  `json:"-"`
	AgeGender *AgeGenderHeader `json:"-"`
}

// Valid reports whether the row carries no flags.
func (r *Row) Valid() bool {
	return len(r.Flags) == 0
}

// HasFlag reports whether the row carries a flag with the given code.
func (r *Row) HasFlag(code FlagCode) bool {
	for _, f := range r.Flags {
		if f.Code == code {
			return true
		}
	}
	return false
}

// StandardsByLabel maps each time group onto its cut labels, producing
// one label→time map per gender segment. Returns ok=false when the row
// has no active cut-order header or either group is not exactly six
// cells, in which case no positional meaning can be assigned.
func (r *Row) StandardsByLabel() (left, right map[string]StandardTime, ok bool) {
	if r.CutOrder == nil || len(r.Left) != EventLabelIndex || len(r.Right) != EventLabelIndex {
		return nil, nil, false
	}
	left = make(map[string]StandardTime, EventLabelIndex)
	right = make(map[string]StandardTime, EventLabelIndex)
	for i, label := range r.CutOrder.LeftLabels() {
		left[label] = r.Left[i]
	}
	for i, label := range r.CutOrder.RightLabels() {
		right[label] = r.Right[i]
	}
	return left, right, true
}

// Subtable is a maximal run of rows governed by one fixed header pair.
// It exclusively owns its rows. Either header may be nil for orphan
// runs that began before the corresponding header appeared.
type Subtable struct {
	CutOrder  *CutOrderHeader  `json:"cut_order,omitempty"`
	AgeGender *AgeGenderHeader `json:"age_gender,omitempty"`
	Rows      []*Row           `json:"rows"`
}

// FlagCount returns the number of flags across all rows.
func (s *Subtable) FlagCount() int {
	n := 0
	for _, r := range s.Rows {
		n += len(r.Flags)
	}
	return n
}

// Document is the complete reconstruction result for one input.
type Document struct {
	RunID       string       `json:"run_id,omitempty"`
	Source      string       `json:"source,omitempty"`
	LineCount   int          `json:"line_count"`
	Subtables   []*Subtable  `json:"subtables"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// FlagCount returns the number of flags across all subtables.
func (d *Document) FlagCount() int {
	n := 0
	for _, s := range d.Subtables {
		n += s.FlagCount()
	}
	return n
}

// RowCount returns the number of rows across all subtables.
func (d *Document) RowCount() int {
	n := 0
	for _, s := range d.Subtables {
		n += len(s.Rows)
	}
	return n
}

// Clean reports whether the document has no flags and no diagnostics.
func (d *Document) Clean() bool {
	return d.FlagCount() == 0 && len(d.Diagnostics) == 0
}
