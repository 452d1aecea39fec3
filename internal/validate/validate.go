// Package validate reconstructs and checks one data row at a time.
//
// The validator receives a row's split cells and produces a Row plus
// its ordered validation flags. No row is ever discarded: a failing
// check marks the row and keeps whatever was recovered, so federation
// staff can review the original cells next to every finding.
package validate

import (
	"errors"
	"fmt"

	"github.com/roach88/cutsheet/internal/standard"
)

// groupSize is the number of standards cells on each side of the event
// column.
const groupSize = standard.EventLabelIndex

// Validator checks data rows against the event vocabulary.
type Validator struct {
	lex standard.EventLexicon
}

// New creates a validator for the given lexicon.
func New(lex standard.EventLexicon) *Validator {
	return &Validator{lex: lex}
}

// Row validates one split data row.
//
// The event cell is the single cell that parses as an EventName; the
// six cells before it form the left (descending) group and the six
// after it the right (ascending) group. When the event cell cannot be
// located (zero or multiple candidates) the positional checks are
// skipped, since position cannot be inferred, and the row is retained
// with the locating flag alone.
func (v *Validator) Row(cells []string, line standard.Line) *standard.Row {
	row := &standard.Row{
		Cells:     cells,
		Line:      line.Number,
		Page:      line.Page,
		EventCell: -1,
	}

	matches := v.locateEvent(cells)
	switch len(matches) {
	case 1:
		row.EventCell = matches[0]
	case 0:
		// Flag near misses first: a cell with letters in a data row can
		// only be an intended event name, so surface why it failed.
		for i, cell := range cells {
			if containsAlpha(cell) {
				if _, err := standard.ParseEventName(cell, v.lex); err != nil {
					v.flag(row, standard.FlagMalformedEvent, i, err.Error())
				}
			}
		}
		v.flag(row, standard.FlagEmptyEventCell, -1, "no cell parses as an event name")
		return row
	default:
		v.flag(row, standard.FlagAmbiguousEventCell, -1,
			fmt.Sprintf("%d cells parse as event names", len(matches)))
		return row
	}

	event, err := standard.ParseEventName(cells[row.EventCell], v.lex)
	if err != nil {
		// Unreachable given locateEvent succeeded, but never trust it silently.
		v.flag(row, standard.FlagMalformedEvent, row.EventCell, err.Error())
		return row
	}
	row.Event = event
	if !v.lex.CanonicalDistance(event.Distance) {
		v.flag(row, standard.FlagNonCanonicalDistance, row.EventCell,
			fmt.Sprintf("distance %d is outside the canonical set", event.Distance))
	}

	left := cells[:row.EventCell]
	right := cells[row.EventCell+1:]
	if len(left) != groupSize || len(right) != groupSize {
		v.flag(row, standard.FlagWrongCellCount, -1,
			fmt.Sprintf("expected %d+%d cells around the event, got %d+%d",
				groupSize, groupSize, len(left), len(right)))
	}

	row.Left = v.parseGroup(row, left, 0)
	row.Right = v.parseGroup(row, right, row.EventCell+1)

	if i, bad := firstOrderViolation(row.Left, false); bad {
		v.flag(row, standard.FlagLeftNotDescending, i,
			fmt.Sprintf("left group increases at index %d", i))
	}
	if i, bad := firstOrderViolation(row.Right, true); bad {
		v.flag(row, standard.FlagRightNotAscending, row.EventCell+1+i,
			fmt.Sprintf("right group decreases at index %d", i))
	}

	return row
}

// locateEvent returns the indices of all cells parsing as event names.
func (v *Validator) locateEvent(cells []string) []int {
	var matches []int
	for i, cell := range cells {
		if _, err := standard.ParseEventName(cell, v.lex); err == nil {
			matches = append(matches, i)
		}
	}
	return matches
}

// parseGroup parses one side's time cells, flagging malformed cells
// individually so the remainder of the row stays reviewable.
func (v *Validator) parseGroup(row *standard.Row, cells []string, offset int) []standard.StandardTime {
	times := make([]standard.StandardTime, len(cells))
	for i, cell := range cells {
		st, err := standard.ParseStandardTime(cell)
		if err != nil {
			var mt *standard.MalformedTimeError
			if errors.As(err, &mt) {
				v.flag(row, standard.FlagMalformedTime, offset+i, err.Error())
			}
			// The slot stays null; ordering checks skip it.
			continue
		}
		times[i] = st
	}
	return times
}

// firstOrderViolation scans a time group for the first index breaking
// the required monotonic order. Null values are excluded; comparison
// is non-strict, so equal adjacent times never violate. The returned
// index is relative to the group.
func firstOrderViolation(times []standard.StandardTime, ascending bool) (int, bool) {
	prev := -1
	for i, t := range times {
		if !t.Valid {
			continue
		}
		if prev >= 0 {
			if ascending && t.Hundredths < prev {
				return i, true
			}
			if !ascending && t.Hundredths > prev {
				return i, true
			}
		}
		prev = t.Hundredths
	}
	return 0, false
}

func containsAlpha(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func (v *Validator) flag(row *standard.Row, code standard.FlagCode, cell int, detail string) {
	row.Flags = append(row.Flags, standard.Flag{
		Code:   code,
		Line:   row.Line,
		Page:   row.Page,
		Cell:   cell,
		Detail: detail,
	})
}
