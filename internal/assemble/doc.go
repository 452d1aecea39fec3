// Package assemble reduces a classified line sequence into subtables.
//
// The reduction is a single-pass, single-threaded fold: the section
// context (the currently active cut-order and age/gender headers)
// carries a line-to-line dependency that forbids reordering.
// Classification and per-cell parsing are pure and could run ahead in
// parallel, but the assembler must see lines in original order, so it
// is the one ordered stage. The core holds no shared mutable state;
// the context is a value threaded through the fold.
//
// State machine:
//
//	NoActiveHeaders -> HasCutOrder -> HasBoth
//
// looping back whenever a header line arrives. A new header of either
// kind supersedes the active one and closes the open subtable; it
// never merges. Rows seen before any header become orphans, retained
// and flagged. End of input closes the open subtable.
package assemble
