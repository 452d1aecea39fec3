package assemble

import "github.com/google/uuid"

// RunIDGenerator produces identifiers for parse runs. Run IDs
// correlate a report with its persisted audit record.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs, so audit
// store listings sort by creation time.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 as a hyphenated string.
// Panics only if UUID generation fails, which does not happen in
// practice.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns a predetermined run ID, for deterministic
// tests and golden-file comparison.
type FixedGenerator struct {
	ID string
}

// Generate returns the fixed ID.
func (g FixedGenerator) Generate() string {
	return g.ID
}
