package scan

import (
	"regexp"
	"strings"

	"github.com/roach88/cutsheet/internal/standard"
)

// cellSeparator: runs of two or more whitespace characters. A single
// interior space belongs to the cell ("200 IM LCM", "10 & under").
var cellSeparator = regexp.MustCompile(`\s{2,}`)

// SplitCells splits a data-row candidate into its non-empty trimmed
// cells, left to right. It never invents placeholder cells for gaps;
// reconciling against the 13-slot grid is the validator's concern.
func SplitCells(text string) []string {
	parts := cellSeparator.Split(strings.TrimSpace(text), -1)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

// RepairCells merges cells severed by the extraction step. Three
// artifact shapes occur in real sheets:
//
//	["2", ":17.99"]      -> ["2:17.99"]      minutes severed from remainder
//	["59.89", "*"]       -> ["59.89*"]       detached asterisk marker
//	["200 FR", "SCY"]    -> ["200 FR SCY"]   event severed from pool code
//
// Each merge re-checks the merged cell against its new neighbor, so
// chained artifacts ("2", ":17.99", "*") collapse fully.
func RepairCells(cells []string, lex standard.EventLexicon) []string {
	out := make([]string, len(cells))
	copy(out, cells)

	i := 0
	for i < len(out)-1 {
		current, next := out[i], out[i+1]

		if next == "*" {
			out[i] = current + "*"
			out = append(out[:i+1], out[i+2:]...)
			continue
		}

		if isDigits(current) && strings.HasPrefix(next, ":") {
			out[i] = current + next
			out = append(out[:i+1], out[i+2:]...)
			continue
		}

		if lex.KnownPool(next) && containsAlpha(current) {
			out[i] = current + " " + next
			out = append(out[:i+1], out[i+2:]...)
			continue
		}

		i++
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsAlpha(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
