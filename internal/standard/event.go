package standard

import (
	"fmt"
	"strconv"
	"strings"
)

// EventName identifies a swimming event: distance, stroke style, and
// pool configuration. Derived from exactly 3 whitespace-separated
// tokens, e.g. "200 IM LCM".
type EventName struct {
	Distance int    `json:"distance"`
	Style    string `json:"style"` // FR, BK, BR, FL, IM
	Pool     string `json:"pool"`  // LCM, SCY, SCM, ... (open set)
}

// String renders the canonical 3-token form.
func (e EventName) String() string {
	return fmt.Sprintf("%d %s %s", e.Distance, e.Style, e.Pool)
}

// EventLexicon holds the recognized event vocabulary. Styles are a
// closed set; pools are open (the listed codes are the known ones, and
// unknown alphabetic codes are accepted); canonical distances gate the
// NONCANONICAL_DISTANCE flag, never rejection.
type EventLexicon struct {
	Styles             []string
	Pools              []string
	CanonicalDistances []int
}

// DefaultLexicon returns the USA Swimming vocabulary.
func DefaultLexicon() EventLexicon {
	return EventLexicon{
		Styles:             []string{"FR", "BK", "BR", "FL", "IM"},
		Pools:              []string{"SCY", "SCM", "LCM"},
		CanonicalDistances: []int{50, 100, 200, 400, 800, 1500},
	}
}

// KnownStyle reports whether code matches a style, case-insensitively.
func (l EventLexicon) KnownStyle(code string) bool {
	for _, s := range l.Styles {
		if strings.EqualFold(s, code) {
			return true
		}
	}
	return false
}

// KnownPool reports whether code is one of the listed pool codes.
func (l EventLexicon) KnownPool(code string) bool {
	for _, p := range l.Pools {
		if strings.EqualFold(p, code) {
			return true
		}
	}
	return false
}

// CanonicalDistance reports whether d is in the canonical distance set.
func (l EventLexicon) CanonicalDistance(d int) bool {
	for _, c := range l.CanonicalDistances {
		if c == d {
			return true
		}
	}
	return false
}

// MalformedEventError reports a cell that cannot be an event name.
type MalformedEventError struct {
	Input  string
	Reason string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event %q: %s", e.Input, e.Reason)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// ParseEventName parses a cell into an EventName using lex.
//
// The cell must split into exactly 3 tokens: a positive integer
// distance, a style from the closed set (case-insensitive), and an
// alphabetic pool code. Style and pool are normalized to upper case.
// Non-canonical distances parse successfully; the caller decides
// whether to flag them.
func ParseEventName(cell string, lex EventLexicon) (EventName, error) {
	tokens := strings.Fields(cell)
	if len(tokens) != 3 {
		return EventName{}, &MalformedEventError{
			Input:  cell,
			Reason: fmt.Sprintf("expected 3 tokens, got %d", len(tokens)),
		}
	}

	distance, err := strconv.Atoi(tokens[0])
	if err != nil || distance <= 0 {
		return EventName{}, &MalformedEventError{Input: cell, Reason: "distance is not a positive integer"}
	}

	if !lex.KnownStyle(tokens[1]) {
		return EventName{}, &MalformedEventError{
			Input:  cell,
			Reason: fmt.Sprintf("unknown style %q", tokens[1]),
		}
	}

	if !isAlpha(tokens[2]) {
		return EventName{}, &MalformedEventError{
			Input:  cell,
			Reason: fmt.Sprintf("pool code %q is not alphabetic", tokens[2]),
		}
	}

	return EventName{
		Distance: distance,
		Style:    strings.ToUpper(tokens[1]),
		Pool:     strings.ToUpper(tokens[2]),
	}, nil
}
