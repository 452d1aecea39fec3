package standard

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// StandardTime is one motivational standard: a duration in integer
// hundredths of a second plus an independent asterisk marker.
//
// Valid=false means the source cell was empty. An empty cell is a
// legitimate table state (no published standard for that cut), not an
// error, and is excluded from ordering checks.
type StandardTime struct {
	Hundredths int  `json:"hundredths"`
	Asterisk   bool `json:"asterisk"`
	Valid      bool `json:"valid"`
}

// timePattern: optional minutes prefix, 1-2 digit seconds, exactly two
// hundredths digits, optional trailing asterisk. The asterisk may be
// separated by a single space; some extractions emit "59.89 *".
var timePattern = regexp.MustCompile(`^(?:(\d+):)?(\d{1,2})\.(\d{2})( ?\*)?$`)

// MalformedTimeError reports a non-empty cell that does not match the
// time pattern.
type MalformedTimeError struct {
	Input string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q", e.Input)
}

// ParseStandardTime parses a trimmed cell into a StandardTime.
// An empty cell yields the null value {Valid: false, Asterisk: false}.
func ParseStandardTime(cell string) (StandardTime, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return StandardTime{}, nil
	}

	m := timePattern.FindStringSubmatch(cell)
	if m == nil {
		return StandardTime{}, &MalformedTimeError{Input: cell}
	}

	minutes := 0
	if m[1] != "" {
		var err error
		minutes, err = strconv.Atoi(m[1])
		if err != nil {
			return StandardTime{}, &MalformedTimeError{Input: cell}
		}
	}
	seconds, _ := strconv.Atoi(m[2])
	hundredths, _ := strconv.Atoi(m[3])

	return StandardTime{
		Hundredths: minutes*6000 + seconds*100 + hundredths,
		Asterisk:   m[4] != "",
		Valid:      true,
	}, nil
}

// String renders the canonical form: "M:SS.hh" when minutes are
// present, "S.hh" otherwise, with the asterisk appended verbatim.
// "1:05.23*" parses to 6523 and renders back to "1:05.23*".
// The null value renders as the empty string.
func (t StandardTime) String() string {
	if !t.Valid {
		return ""
	}
	minutes := t.Hundredths / 6000
	rem := t.Hundredths % 6000
	var s string
	if minutes > 0 {
		s = fmt.Sprintf("%d:%02d.%02d", minutes, rem/100, rem%100)
	} else {
		s = fmt.Sprintf("%d.%02d", rem/100, rem%100)
	}
	if t.Asterisk {
		s += "*"
	}
	return s
}

// MarshalJSON emits null for the empty cell so the JSON report mirrors
// the source table's gaps.
func (t StandardTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	type rendered struct {
		Hundredths int    `json:"hundredths"`
		Asterisk   bool   `json:"asterisk"`
		Display    string `json:"display"`
	}
	return json.Marshal(rendered{
		Hundredths: t.Hundredths,
		Asterisk:   t.Asterisk,
		Display:    t.String(),
	})
}
