// Package grid resolves row and column spans of a table into a dense coverage grid.
//
// The package works on span declarations only; it knows nothing about the HTML
// tree the spans were read from. Rows are partitioned into groups with Partition
// and each group is resolved with Resolve.
package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedSpan indicates a span declaration or row shape that cannot be resolved.
var ErrMalformedSpan = errors.New("malformed span")

// Kind identifies the variant of a Record.
type Kind uint8

const (
	// Unresolved marks a position no cell could be assigned to.
	Unresolved Kind = iota
	// Origin marks the position of a cell that starts in this row.
	Origin
	// Inherited marks a position covered by a cell that started in a row above.
	Inherited
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Origin:
		return "origin"
	case Inherited:
		return "inherited"
	default:
		return "unresolved"
	}
}

// Record states which cell owns one (row, column) position of a group.
// The zero value is an unresolved record.
type Record struct {
	kind Kind
	cell int
	// n is the remaining row span for origins and the row delta for inherited records.
	n int
}

// NewOrigin returns a record for cell index cell starting at its own row with
// remaining rows still to cover below it.
func NewOrigin(cell, remaining int) Record {
	return Record{kind: Origin, cell: cell, n: remaining}
}

// NewInherited returns a record for a position covered by cell index cell of the
// row delta rows above.
func NewInherited(delta, cell int) Record {
	return Record{kind: Inherited, cell: cell, n: delta}
}

// Kind returns the record variant.
func (r Record) Kind() Kind { return r.kind }

// Cell returns the index of the owning cell among its row's cells, or -1 when unresolved.
func (r Record) Cell() int {
	if r.kind == Unresolved {
		return -1
	}
	return r.cell
}

// Remaining returns the rows an origin still covers below its own row.
// It is 0 for other kinds.
func (r Record) Remaining() int {
	if r.kind != Origin {
		return 0
	}
	return r.n
}

// Delta returns how many rows above the owning cell starts.
// It is 0 for origins and unresolved records.
func (r Record) Delta() int {
	if r.kind != Inherited {
		return 0
	}
	return r.n
}

// String renders the record as O(cell,remaining), I(delta,cell) or "-".
func (r Record) String() string {
	switch r.kind {
	case Origin:
		return fmt.Sprintf("O(%d,%d)", r.cell, r.n)
	case Inherited:
		return fmt.Sprintf("I(%d,%d)", r.n, r.cell)
	default:
		return "-"
	}
}

// Issue describes a malformed part of a group found while resolving it.
// Row and Col are local to the group.
type Issue struct {
	Row    int
	Col    int
	Reason string
}

func (i Issue) Error() string {
	return fmt.Sprintf("row %d col %d: %s", i.Row, i.Col, i.Reason)
}

// Unwrap returns ErrMalformedSpan so issues match it with errors.Is.
func (i Issue) Unwrap() error {
	return ErrMalformedSpan
}
