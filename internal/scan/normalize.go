package scan

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeForMatch folds a line for title comparison: NFC
// normalization, case folding, and whitespace collapse. PDF extractors
// are inconsistent about composed characters and run spacing, so exact
// byte comparison against the profile titles is too brittle.
func normalizeForMatch(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}
