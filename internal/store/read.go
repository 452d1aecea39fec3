package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/roach88/cutsheet/internal/standard"
)

// RunSummary is one audit-store run listing entry.
type RunSummary struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	CreatedAt string `json:"created_at"`
	LineCount int    `json:"line_count"`
	RowCount  int    `json:"row_count"`
	FlagCount int    `json:"flag_count"`
}

// ListRuns returns all runs, newest first. Run IDs are UUIDv7, so the
// ID ordering is also creation ordering.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, created_at, line_count, row_count, flag_count
		FROM runs ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Source, &r.CreatedAt, &r.LineCount, &r.RowCount, &r.FlagCount); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun returns one run summary.
func (s *Store) GetRun(ctx context.Context, id string) (*RunSummary, error) {
	var r RunSummary
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, created_at, line_count, row_count, flag_count
		FROM runs WHERE id = ?
	`, id).Scan(&r.ID, &r.Source, &r.CreatedAt, &r.LineCount, &r.RowCount, &r.FlagCount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return &r, nil
}

// FlaggedRow is one stored row carrying at least one flag.
type FlaggedRow struct {
	RunID string          `json:"run_id"`
	Line  int             `json:"line"`
	Page  int             `json:"page,omitempty"`
	Cells []string        `json:"cells"`
	Flags []standard.Flag `json:"flags"`
}

// FlaggedRows returns every flagged row of a run, in line order.
func (s *Store) FlaggedRows(ctx context.Context, runID string) ([]FlaggedRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, line, page, cells, flags
		FROM rows
		WHERE run_id = ? AND flags != '[]'
		ORDER BY line
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("flagged rows: %w", err)
	}
	defer rows.Close()

	var out []FlaggedRow
	for rows.Next() {
		var fr FlaggedRow
		var cellsJSON, flagsJSON string
		if err := rows.Scan(&fr.RunID, &fr.Line, &fr.Page, &cellsJSON, &flagsJSON); err != nil {
			return nil, fmt.Errorf("flagged rows: %w", err)
		}
		if err := json.Unmarshal([]byte(cellsJSON), &fr.Cells); err != nil {
			return nil, fmt.Errorf("flagged rows: cells for line %d: %w", fr.Line, err)
		}
		if err := json.Unmarshal([]byte(flagsJSON), &fr.Flags); err != nil {
			return nil, fmt.Errorf("flagged rows: flags for line %d: %w", fr.Line, err)
		}
		out = append(out, fr)
	}
	return out, rows.Err()
}

// CountRows returns the total number of stored rows for a run.
func (s *Store) CountRows(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rows WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}
