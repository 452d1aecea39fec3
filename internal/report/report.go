// Package report renders a reconstructed document for review.
//
// Three formats are supported: json (the full structured document),
// yaml (the same tree for humans who prefer it), and text (a compact
// audit summary). Flags and diagnostics are the report's error
// channel; rendering never drops a flagged row.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/cutsheet/internal/standard"
)

// ValidFormats lists the supported render formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Render writes the document to w in the requested format.
func Render(w io.Writer, doc *standard.Document, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		return renderYAML(w, doc)
	case "text":
		return renderText(w, doc)
	default:
		return fmt.Errorf("unknown format %q: must be one of %v", format, ValidFormats)
	}
}

// renderYAML goes through the JSON encoding so the YAML tree carries
// the same snake_case keys and null time cells as the JSON report.
func renderYAML(w io.Writer, doc *standard.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return err
	}
	return yaml.NewEncoder(w).Encode(tree)
}

func renderText(w io.Writer, doc *standard.Document) error {
	fmt.Fprintf(w, "run %s: %d line(s), %d subtable(s), %d row(s), %d flag(s)\n",
		doc.RunID, doc.LineCount, len(doc.Subtables), doc.RowCount(), doc.FlagCount())

	for i, st := range doc.Subtables {
		fmt.Fprintf(w, "\nsubtable %d: %s\n", i+1, describeSubtable(st))
		for _, row := range st.Rows {
			fmt.Fprintf(w, "  line %d: %s\n", row.Line, describeRow(row))
			for _, f := range row.Flags {
				fmt.Fprintf(w, "    ! %s\n", f)
			}
		}
	}

	for _, d := range doc.Diagnostics {
		fmt.Fprintf(w, "\nunparseable: %s\n", d.Text)
	}
	return nil
}

func describeSubtable(st *standard.Subtable) string {
	if st.AgeGender == nil && st.CutOrder == nil {
		return "(no active headers)"
	}
	if st.AgeGender == nil {
		return fmt.Sprintf("cut order at line %d, no age/gender header", st.CutOrder.Line)
	}
	desc := fmt.Sprintf("%s / %s", st.AgeGender.Left, st.AgeGender.Right)
	if st.AgeGender.Mismatch() {
		desc += " (age mismatch)"
	}
	if st.CutOrder == nil {
		desc += ", no cut-order header"
	}
	return desc
}

func describeRow(row *standard.Row) string {
	if row.EventCell < 0 {
		return fmt.Sprintf("(event not located) %d cell(s)", len(row.Cells))
	}
	left := renderTimes(row.Left)
	right := renderTimes(row.Right)
	return fmt.Sprintf("%s  left=%s right=%s", row.Event, left, right)
}

func renderTimes(times []standard.StandardTime) string {
	out := "["
	for i, t := range times {
		if i > 0 {
			out += " "
		}
		if !t.Valid {
			out += "-"
		} else {
			out += t.String()
		}
	}
	return out + "]"
}
