package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/roach88/cutsheet/internal/standard"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// WriteRun persists a complete parse run in one transaction.
// Writing the same run ID twice is an error; runs are immutable.
func (s *Store) WriteRun(ctx context.Context, doc *standard.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, line_count, row_count, flag_count)
		VALUES (?, ?, ?, ?, ?)
	`, doc.RunID, doc.Source, doc.LineCount, doc.RowCount(), doc.FlagCount())
	if err != nil {
		return fmt.Errorf("write run %s: %w", doc.RunID, err)
	}

	for seq, st := range doc.Subtables {
		// Orphan runs have no header pair; their rows persist with a
		// NULL subtable reference.
		var subtableID interface{}
		if st.CutOrder != nil || st.AgeGender != nil {
			id, err := insertSubtable(ctx, tx, doc.RunID, seq, st)
			if err != nil {
				return err
			}
			subtableID = id
		}
		for _, row := range st.Rows {
			if err := insertRow(ctx, tx, doc.RunID, subtableID, row); err != nil {
				return err
			}
		}
	}

	for _, d := range doc.Diagnostics {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO diagnostics (run_id, line, page, detail)
			VALUES (?, ?, ?, ?)
		`, doc.RunID, d.Line, d.Page, d.Text)
		if err != nil {
			return fmt.Errorf("write diagnostic: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run %s: %w", doc.RunID, err)
	}
	return nil
}

func insertSubtable(ctx context.Context, tx execer, runID string, seq int, st *standard.Subtable) (int64, error) {
	var cutLine, ageLine interface{}
	var ageLeft, genderLeft, ageRight, genderRight interface{}
	if st.CutOrder != nil {
		cutLine = st.CutOrder.Line
	}
	if st.AgeGender != nil {
		ageLine = st.AgeGender.Line
		ageLeft = st.AgeGender.Left.Age.String()
		genderLeft = st.AgeGender.Left.Gender
		ageRight = st.AgeGender.Right.Age.String()
		genderRight = st.AgeGender.Right.Gender
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO subtables (run_id, seq, cut_line, age_line, age_left, gender_left, age_right, gender_right)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, seq, cutLine, ageLine, ageLeft, genderLeft, ageRight, genderRight)
	if err != nil {
		return 0, fmt.Errorf("write subtable %d: %w", seq, err)
	}
	return res.LastInsertId()
}

func insertRow(ctx context.Context, tx execer, runID string, subtableID interface{}, row *standard.Row) error {
	cellsJSON, err := json.Marshal(row.Cells)
	if err != nil {
		return fmt.Errorf("write row line %d: %w", row.Line, err)
	}
	flags := row.Flags
	if flags == nil {
		flags = []standard.Flag{}
	}
	flagsJSON, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("write row line %d: %w", row.Line, err)
	}

	var distance, style, pool interface{}
	if row.EventCell >= 0 {
		distance = row.Event.Distance
		style = row.Event.Style
		pool = row.Event.Pool
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rows (run_id, subtable_id, line, page, event_distance, event_style, event_pool, cells, flags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, subtableID, row.Line, row.Page, distance, style, pool, string(cellsJSON), string(flagsJSON))
	if err != nil {
		return fmt.Errorf("write row line %d: %w", row.Line, err)
	}
	return nil
}
