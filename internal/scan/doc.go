// Package scan classifies raw lines and splits data-row candidates
// into cells.
//
// Classification is a pure function from one line to one category; it
// never consults or mutates the section context. The splitter uses
// runs of two or more whitespace characters as cell separators, so
// single interior spaces ("200 IM LCM") never split a cell. A repair
// pass then merges the known extraction artifacts: a detached "*"
// marker, a minutes digit severed from its ":SS.hh" remainder, and an
// event name severed from its pool code.
//
// Gap reconciliation to the 13-slot grid is not done here; that is the
// validator's job.
package scan
