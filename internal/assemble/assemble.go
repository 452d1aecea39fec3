package assemble

import (
	"github.com/roach88/cutsheet/internal/profile"
	"github.com/roach88/cutsheet/internal/scan"
	"github.com/roach88/cutsheet/internal/standard"
	"github.com/roach88/cutsheet/internal/validate"
)

// State names the section-context position in the header state machine.
type State int

const (
	NoActiveHeaders State = iota
	HasCutOrder
	HasBoth
)

// Context is the section context: the headers in force for the next
// data row. Contexts are values; transitions produce a new context and
// never mutate headers in place.
type Context struct {
	CutOrder  *standard.CutOrderHeader
	AgeGender *standard.AgeGenderHeader
}

// State derives the machine state from the active headers.
func (c Context) State() State {
	switch {
	case c.CutOrder == nil && c.AgeGender == nil:
		return NoActiveHeaders
	case c.AgeGender == nil:
		return HasCutOrder
	default:
		return HasBoth
	}
}

// Assembler folds classified lines into a Document. It is single-use:
// create one per input, feed lines in order, then call Finish.
type Assembler struct {
	classifier *scan.Classifier
	validator  *validate.Validator
	lex        standard.EventLexicon

	ctx       Context
	open      *standard.Subtable
	doc       *standard.Document
	lineCount int
}

// New creates an assembler for one input under the given profile.
func New(p *profile.Profile, gen RunIDGenerator) *Assembler {
	lex := p.Lexicon()
	return &Assembler{
		classifier: scan.NewClassifier(p),
		validator:  validate.New(lex),
		lex:        lex,
		doc: &standard.Document{
			RunID:     gen.Generate(),
			Subtables: []*standard.Subtable{},
		},
	}
}

// Process consumes the next line. Lines must arrive in original order.
func (a *Assembler) Process(line standard.Line) {
	a.lineCount++
	if line.Number == 0 {
		line.Number = a.lineCount
	}

	switch a.classifier.Classify(line) {
	case standard.ClassNoise:
		// Titles, timestamps, page footers: no output.

	case standard.ClassCutOrderHeader:
		h, _ := a.classifier.ParseCutOrder(line)
		a.closeSubtable()
		a.ctx = Context{CutOrder: h, AgeGender: a.ctx.AgeGender}

	case standard.ClassAgeGenderHeader:
		h, _ := scan.ParseAgeGender(line)
		a.closeSubtable()
		a.ctx = Context{CutOrder: a.ctx.CutOrder, AgeGender: h}

	case standard.ClassDataRowCandidate:
		a.appendRow(line)

	case standard.ClassUnparseable:
		a.doc.Diagnostics = append(a.doc.Diagnostics, standard.Diagnostic{
			Line: line.Number,
			Page: line.Page,
			Text: scan.DescribeUnparseable(line),
		})
	}
}

func (a *Assembler) appendRow(line standard.Line) {
	cells := scan.SplitCells(line.Text)
	cells = scan.RepairCells(cells, a.lex)

	row := a.validator.Row(cells, line)
	row.CutOrder = a.ctx.CutOrder
	row.AgeGender = a.ctx.AgeGender

	if a.ctx.State() == NoActiveHeaders {
		row.Flags = append(row.Flags, standard.Flag{
			Code:   standard.FlagOrphanRow,
			Line:   line.Number,
			Page:   line.Page,
			Cell:   -1,
			Detail: "data row before any header",
		})
	}

	if a.open == nil {
		a.open = &standard.Subtable{
			CutOrder:  a.ctx.CutOrder,
			AgeGender: a.ctx.AgeGender,
		}
	}
	a.open.Rows = append(a.open.Rows, row)
}

// closeSubtable ends the open subtable, if any. Header-only sections
// that never accumulated a row produce no subtable.
func (a *Assembler) closeSubtable() {
	if a.open == nil {
		return
	}
	a.doc.Subtables = append(a.doc.Subtables, a.open)
	a.open = nil
}

// Finish closes the open subtable and returns the document.
// The assembler must not be used afterwards.
func (a *Assembler) Finish() *standard.Document {
	a.closeSubtable()
	a.doc.LineCount = a.lineCount
	return a.doc
}

// Assemble runs the whole reduction over an in-memory line sequence.
// Zero lines is a valid input yielding zero subtables.
func Assemble(lines []string, p *profile.Profile, gen RunIDGenerator) *standard.Document {
	a := New(p, gen)
	for i, text := range lines {
		a.Process(standard.Line{Text: text, Number: i + 1})
	}
	return a.Finish()
}
