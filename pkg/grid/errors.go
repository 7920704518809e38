package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidDigit indicates a non-digit character where a digit was required.
	ErrInvalidDigit = errors.New("grid: invalid digit")
)

// ParseError locates a construction failure in the input text.
type ParseError struct {
	Row    int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %d: %v", e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// BoundsError is the panic value raised by writes outside the grid.
type BoundsError struct {
	Op         string
	Coordinate Coordinate
	Rows       int
	Columns    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: %s at %v outside %dx%d grid", e.Op, e.Coordinate, e.Columns, e.Rows)
}
