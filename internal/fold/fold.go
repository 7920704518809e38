// Package fold mirrors dotted transparent paper along horizontal and vertical lines.
package fold

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"flashgrid/pkg/grid"
)

var (
	// ErrBadDot reports a dot line that is not "x,y".
	ErrBadDot = errors.New("fold: malformed dot")
	// ErrBadInstruction reports a line that is not "fold along x=N" or "fold along y=N".
	ErrBadInstruction = errors.New("fold: malformed instruction")
	// ErrNoDots reports input without any dot.
	ErrNoDots = errors.New("fold: no dots")
)

// Axis names the coordinate a fold line is fixed on.
type Axis byte

const (
	// AxisX folds the right half leftwards along a vertical line.
	AxisX Axis = 'x'
	// AxisY folds the bottom half upwards along a horizontal line.
	AxisY Axis = 'y'
)

// Instruction is one fold.
type Instruction struct {
	Axis Axis
	Line int
}

func (in Instruction) String() string {
	return fmt.Sprintf("fold along %c=%d", in.Axis, in.Line)
}

// Paper is the parsed puzzle: the marked sheet and the folds to apply to it.
type Paper struct {
	Sheet *grid.Grid[bool]
	Folds []Instruction
}

// Parse reads dot coordinates, a blank line, then fold instructions.
func Parse(lines []string) (*Paper, error) {
	var dots []grid.Coordinate
	var folds []Instruction
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "fold along "):
			in, err := parseInstruction(strings.TrimPrefix(line, "fold along "))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			folds = append(folds, in)
		default:
			c, err := parseDot(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			dots = append(dots, c)
		}
	}
	if len(dots) == 0 {
		return nil, ErrNoDots
	}
	sheet := grid.FromCoordinates(dots, false)
	for _, c := range dots {
		sheet.Set(c, true)
	}
	return &Paper{Sheet: sheet, Folds: folds}, nil
}

func parseDot(s string) (grid.Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coordinate{}, fmt.Errorf("%w: %q", ErrBadDot, s)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return grid.Coordinate{}, fmt.Errorf("%w: %q", ErrBadDot, s)
	}
	return grid.Coordinate{X: x, Y: y}, nil
}

func parseInstruction(s string) (Instruction, error) {
	axis, value, ok := strings.Cut(s, "=")
	if !ok || (axis != "x" && axis != "y") {
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadInstruction, s)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadInstruction, s)
	}
	return Instruction{Axis: Axis(axis[0]), Line: n}, nil
}

// Fold returns a new sheet cut at the fold line, where each cell is marked if
// it or its mirror image (line + (line - i)) was marked. Mirror cells that fall
// off the sheet count as unmarked.
func Fold(sheet *grid.Grid[bool], in Instruction) (*grid.Grid[bool], error) {
	if in.Line <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadInstruction, in)
	}
	rows, cols := sheet.Rows(), sheet.Columns()
	mirror := func(c grid.Coordinate) grid.Coordinate { return c }
	switch in.Axis {
	case AxisY:
		rows = in.Line
		mirror = func(c grid.Coordinate) grid.Coordinate {
			return grid.Coordinate{X: c.X, Y: 2*in.Line - c.Y}
		}
	case AxisX:
		cols = in.Line
		mirror = func(c grid.Coordinate) grid.Coordinate {
			return grid.Coordinate{X: 2*in.Line - c.X, Y: c.Y}
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadInstruction, in)
	}
	return grid.New(rows, cols, func(c grid.Coordinate) bool {
		return sheet.GetOrDefault(c, false) || sheet.GetOrDefault(mirror(c), false)
	}), nil
}

// FoldAll applies every instruction in order.
func FoldAll(sheet *grid.Grid[bool], folds []Instruction) (*grid.Grid[bool], error) {
	var err error
	for _, in := range folds {
		if sheet, err = Fold(sheet, in); err != nil {
			return nil, err
		}
	}
	return sheet, nil
}

// Count returns the number of marked cells.
func Count(sheet *grid.Grid[bool]) int {
	n := 0
	sheet.ForEachCell(func(v bool, _ grid.Coordinate) {
		if v {
			n++
		}
	})
	return n
}

// Render draws marked cells as '#' and empty ones as '.'.
func Render(sheet *grid.Grid[bool]) string {
	return grid.Render(sheet, "", func(v bool) string {
		if v {
			return "#"
		}
		return "."
	})
}
