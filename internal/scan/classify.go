package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/cutsheet/internal/profile"
	"github.com/roach88/cutsheet/internal/standard"
)

var (
	// "Generated 09/01/2023 10:30:00 AM" footers, anywhere in the line.
	timestampPattern = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\s+\d{1,2}:\d{2}:\d{2}(\s*[AP]M)?\b`)

	// "Page K of N" footers. Integer check happens after the match so
	// that "Page 0 of 10" falls through to data-row handling.
	pagePattern = regexp.MustCompile(`\bPage\s+(\d+)\s+of\s+(\d+)\s*$`)

	// One age/gender segment: "10", "11-12", "10 & under", "15 & over",
	// followed by a gender.
	ageSegment = `(\d+)(?:\s*-\s*(\d+)|\s*&\s*(under|over))?\s+(Girls|Boys)`

	ageSegmentPattern = regexp.MustCompile(`^` + ageSegment + `$`)

	// Whole-line form without commas, e.g. "10 Girls   Event   10 Boys".
	// The literal "Event" separator appears on some sheets and carries
	// no information.
	agePairPattern = regexp.MustCompile(`^` + ageSegment + `\s+(?:Event\s+)?` + ageSegment + `$`)
)

// Classifier assigns one Classification per line against a profile.
// Classification has no side effects; tracking the active headers is
// the assembler's job.
type Classifier struct {
	titles map[string]bool
	labels []string
}

// NewClassifier builds a classifier for the given profile.
func NewClassifier(p *profile.Profile) *Classifier {
	titles := make(map[string]bool, len(p.Titles))
	for _, t := range p.Titles {
		titles[normalizeForMatch(t)] = true
	}
	return &Classifier{titles: titles, labels: p.CutLabels}
}

// Classify categorizes one raw line.
func (c *Classifier) Classify(line standard.Line) standard.Classification {
	if !tokenizable(line.Text) {
		return standard.ClassUnparseable
	}
	if c.isNoise(line.Text) {
		return standard.ClassNoise
	}
	if _, ok := c.ParseCutOrder(line); ok {
		return standard.ClassCutOrderHeader
	}
	if _, ok := ParseAgeGender(line); ok {
		return standard.ClassAgeGenderHeader
	}
	return standard.ClassDataRowCandidate
}

func (c *Classifier) isNoise(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	if c.titles[normalizeForMatch(trimmed)] {
		return true
	}
	if timestampPattern.MatchString(trimmed) {
		return true
	}
	if m := pagePattern.FindStringSubmatch(trimmed); m != nil {
		k, errK := strconv.Atoi(m[1])
		n, errN := strconv.Atoi(m[2])
		if errK == nil && errN == nil && k > 0 && n > 0 {
			return true
		}
	}
	return false
}

// ParseCutOrder matches the canonical cut-order label sequence. Tokens
// must equal the profile labels exactly and in order; any permutation
// or omission fails. The variant with the "Event" label omitted (some
// extractions drop it) also matches.
func (c *Classifier) ParseCutOrder(line standard.Line) (*standard.CutOrderHeader, bool) {
	tokens := strings.Fields(line.Text)

	if matchLabels(tokens, c.labels) {
		return &standard.CutOrderHeader{Labels: c.labels, Line: line.Number, Page: line.Page}, true
	}

	withoutEvent := make([]string, 0, len(c.labels)-1)
	for i, l := range c.labels {
		if i == standard.EventLabelIndex {
			continue
		}
		withoutEvent = append(withoutEvent, l)
	}
	if matchLabels(tokens, withoutEvent) {
		return &standard.CutOrderHeader{Labels: c.labels, Line: line.Number, Page: line.Page}, true
	}
	return nil, false
}

func matchLabels(tokens, labels []string) bool {
	if len(tokens) != len(labels) {
		return false
	}
	for i, l := range labels {
		if tokens[i] != l {
			return false
		}
	}
	return true
}

// ParseAgeGender matches a two-segment age/gender header, either
// comma-separated ("10 & under Girls, 10 & under Boys") or space-
// aligned with an optional "Event" separator ("10 Girls  Event  10
// Boys"). Both segments must individually be well formed; disagreement
// between the two segments is not a classification failure.
func ParseAgeGender(line standard.Line) (*standard.AgeGenderHeader, bool) {
	trimmed := strings.TrimSpace(line.Text)

	if strings.Contains(trimmed, ",") {
		parts := strings.Split(trimmed, ",")
		if len(parts) != 2 {
			return nil, false
		}
		left, ok := parseAgeSegment(strings.TrimSpace(parts[0]))
		if !ok {
			return nil, false
		}
		right, ok := parseAgeSegment(strings.TrimSpace(parts[1]))
		if !ok {
			return nil, false
		}
		return &standard.AgeGenderHeader{Left: left, Right: right, Line: line.Number, Page: line.Page}, true
	}

	m := agePairPattern.FindStringSubmatch(collapseSpaces(trimmed))
	if m == nil {
		return nil, false
	}
	left, ok := segmentFromMatch(m[1:5])
	if !ok {
		return nil, false
	}
	right, ok := segmentFromMatch(m[5:9])
	if !ok {
		return nil, false
	}
	return &standard.AgeGenderHeader{Left: left, Right: right, Line: line.Number, Page: line.Page}, true
}

func parseAgeSegment(s string) (standard.AgeGroup, bool) {
	m := ageSegmentPattern.FindStringSubmatch(collapseSpaces(s))
	if m == nil {
		return standard.AgeGroup{}, false
	}
	return segmentFromMatch(m[1:5])
}

// segmentFromMatch builds an AgeGroup from the four submatches of one
// ageSegment: base age, range upper bound, under/over keyword, gender.
func segmentFromMatch(m []string) (standard.AgeGroup, bool) {
	age, err := strconv.Atoi(m[0])
	if err != nil {
		return standard.AgeGroup{}, false
	}
	desc := standard.AgeDescriptor{Kind: standard.AgeSingle, Low: age, High: age}
	switch {
	case m[1] != "":
		high, err := strconv.Atoi(m[1])
		if err != nil || high < age {
			return standard.AgeGroup{}, false
		}
		desc = standard.AgeDescriptor{Kind: standard.AgeRange, Low: age, High: high}
	case m[2] == "under":
		desc = standard.AgeDescriptor{Kind: standard.AgeUnder, High: age}
	case m[2] == "over":
		desc = standard.AgeDescriptor{Kind: standard.AgeOver, Low: age}
	}
	return standard.AgeGroup{Age: desc, Gender: m[3]}, true
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// tokenizable reports whether the line yields at least one graphic
// token. Lines of control bytes or invalid UTF-8 cannot be tokenized
// and surface as diagnostics.
func tokenizable(text string) bool {
	if !utf8.ValidString(text) {
		return false
	}
	for _, tok := range strings.Fields(text) {
		for _, r := range tok {
			if unicode.IsGraphic(r) {
				return true
			}
		}
	}
	return strings.TrimSpace(text) == ""
}

// DescribeUnparseable renders a short diagnostic detail for an
// unparseable line.
func DescribeUnparseable(line standard.Line) string {
	if !utf8.ValidString(line.Text) {
		return fmt.Sprintf("line %d: invalid UTF-8", line.Number)
	}
	return fmt.Sprintf("line %d: no printable tokens", line.Number)
}
