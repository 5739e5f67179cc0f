package tablemap

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/grid"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input could not be read as an HTML document.
var ErrInvalidFormat = errors.New("invalid html document")

// ErrNotTable indicates a node handed to New is not a table element.
var ErrNotTable = errors.New("node is not a table element")

// ErrOutOfRange indicates a group, row or column beyond the resolved grid.
var ErrOutOfRange = errors.New("coordinate out of range")

// ErrMalformedSpan indicates a span declaration or row shape the grid could not
// resolve. It is the same value as grid.ErrMalformedSpan.
var ErrMalformedSpan = grid.ErrMalformedSpan

// ErrDetachedNode indicates an attach destination without an owning document,
// or one inside the mapper's own private document.
var ErrDetachedNode = errors.New("destination is detached or internal")

// MappingError reports a failure at a grid coordinate. Fields that do not apply
// are -1.
type MappingError struct {
	Op     string // "resolve", "cell", "row", "coverage", "span"
	Group  int
	Row    int
	Column int
	Err    error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s at group %d row %d column %d: %v", e.Op, e.Group, e.Row, e.Column, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// NewMappingError creates a new MappingError.
func NewMappingError(op string, group, row, column int, err error) *MappingError {
	return &MappingError{
		Op:     op,
		Group:  group,
		Row:    row,
		Column: column,
		Err:    err,
	}
}

// ExtractionError represents an error while mapping one table of a document.
type ExtractionError struct {
	Source string
	Table  int
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (table %d): %v", e.Source, e.Table, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(source string, table int, err error) *ExtractionError {
	return &ExtractionError{
		Source: source,
		Table:  table,
		Err:    err,
	}
}
