// Package climb finds fewest-step routes across a heightmap of letters,
// moving between orthogonal neighbors and climbing at most one level per move.
package climb

import (
	"errors"
	"fmt"

	"flashgrid/pkg/grid"
)

var (
	// ErrMissingMarker reports a map without an 'S' or an 'E'.
	ErrMissingMarker = errors.New("climb: missing start or end marker")
	// ErrBadHeight reports a character outside a-z, S and E.
	ErrBadHeight = errors.New("climb: invalid height")
	// ErrNoPath reports that the end is unreachable.
	ErrNoPath = errors.New("climb: no path")
)

const (
	startMarker = 'S'
	endMarker   = 'E'
)

// Heightmap is a parsed map with its start and end positions.
type Heightmap struct {
	heights *grid.Grid[int]
	Start   grid.Coordinate
	End     grid.Coordinate
}

// Parse reads the map. When a marker appears more than once the first in
// row-major order wins.
func Parse(lines []string) (*Heightmap, error) {
	runes, err := grid.ParseRunes(lines)
	if err != nil {
		return nil, err
	}
	var start, end *grid.Coordinate
	var bad error
	runes.ForEachCell(func(r rune, c grid.Coordinate) {
		switch {
		case r == startMarker && start == nil:
			start = &c
		case r == endMarker && end == nil:
			end = &c
		case r == startMarker, r == endMarker, r >= 'a' && r <= 'z':
		default:
			if bad == nil {
				bad = &grid.ParseError{Row: c.Y, Column: c.X, Err: fmt.Errorf("%w: %q", ErrBadHeight, r)}
			}
		}
	})
	if bad != nil {
		return nil, bad
	}
	if start == nil || end == nil {
		return nil, ErrMissingMarker
	}
	heights := grid.New(runes.Rows(), runes.Columns(), func(c grid.Coordinate) int {
		v, _ := runes.Get(c)
		return height(v)
	})
	return &Heightmap{heights: heights, Start: *start, End: *end}, nil
}

func height(r rune) int {
	switch r {
	case startMarker:
		return 0
	case endMarker:
		return 'z' - 'a'
	}
	return int(r - 'a')
}

// Height returns the level at c, with 'a' as 0.
func (h *Heightmap) Height(c grid.Coordinate) (int, bool) {
	return h.heights.Get(c)
}

// ShortestPath returns the fewest moves from Start to End.
func (h *Heightmap) ShortestPath() (int, error) {
	return h.search(h.Start,
		func(from, to int) bool { return to <= from+1 },
		func(c grid.Coordinate, _ int) bool { return c == h.End })
}

// ShortestFromAny returns the fewest moves to End from any cell at the lowest level.
func (h *Heightmap) ShortestFromAny() (int, error) {
	// Walk backwards from End so the first lowest cell reached is the nearest one.
	return h.search(h.End,
		func(from, to int) bool { return from <= to+1 },
		func(_ grid.Coordinate, level int) bool { return level == 0 })
}

// search runs a breadth-first walk over orthogonal neighbors from origin,
// following edges allowed by canMove, until done accepts a cell.
func (h *Heightmap) search(origin grid.Coordinate, canMove func(from, to int) bool, done func(grid.Coordinate, int) bool) (int, error) {
	dist := grid.New(h.heights.Rows(), h.heights.Columns(), func(grid.Coordinate) int { return -1 })
	dist.Set(origin, 0)
	queue := []grid.Coordinate{origin}
	for qi := 0; qi < len(queue); qi++ {
		c := queue[qi]
		level, _ := h.heights.Get(c)
		d, _ := dist.Get(c)
		if done(c, level) {
			return d, nil
		}
		for _, n := range h.heights.Neighbors(c, grid.Conn4) {
			if seen, _ := dist.Get(n); seen >= 0 {
				continue
			}
			next, _ := h.heights.Get(n)
			if !canMove(level, next) {
				continue
			}
			dist.Set(n, d+1)
			queue = append(queue, n)
		}
	}
	return 0, ErrNoPath
}
