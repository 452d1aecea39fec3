// Package store persists parse runs to SQLite for later audit.
//
// Each export writes one run: its subtables, every row (flagged rows
// included, orphans with a NULL subtable reference), and every
// unparseable-line diagnostic. Federation staff can then query flags
// across documents without re-parsing the sources.
//
// SQLite is opened in WAL mode with a single writer; a parse run is
// written in one transaction so a run is either fully present or
// absent.
package store
