// Package lines rasterizes horizontal, vertical and 45-degree segments onto a
// grid and counts the cells where segments overlap.
package lines

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"flashgrid/pkg/grid"
)

// ErrBadSegment reports a segment line that does not match "x1,y1 -> x2,y2".
var ErrBadSegment = errors.New("lines: malformed segment")

// ErrUnsupportedAngle reports a segment that is neither straight nor diagonal.
var ErrUnsupportedAngle = errors.New("lines: segment is not horizontal, vertical or 45 degrees")

// Segment is a line between two inclusive endpoints.
type Segment struct {
	From, To grid.Coordinate
}

// Straight reports whether the segment is horizontal or vertical.
func (s Segment) Straight() bool {
	return s.From.X == s.To.X || s.From.Y == s.To.Y
}

func (s Segment) diagonal() bool {
	return abs(s.To.X-s.From.X) == abs(s.To.Y-s.From.Y)
}

// ParseSegment reads "x1,y1 -> x2,y2".
func ParseSegment(line string) (Segment, error) {
	from, to, ok := strings.Cut(line, "->")
	if !ok {
		return Segment{}, fmt.Errorf("%w: %q", ErrBadSegment, line)
	}
	a, err := parsePoint(from)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %q", ErrBadSegment, line)
	}
	b, err := parsePoint(to)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %q", ErrBadSegment, line)
	}
	return Segment{From: a, To: b}, nil
}

func parsePoint(s string) (grid.Coordinate, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Coordinate{}, ErrBadSegment
	}
	x, err := strconv.Atoi(xs)
	if err != nil || x < 0 {
		return grid.Coordinate{}, ErrBadSegment
	}
	y, err := strconv.Atoi(ys)
	if err != nil || y < 0 {
		return grid.Coordinate{}, ErrBadSegment
	}
	return grid.Coordinate{X: x, Y: y}, nil
}

// ParseSegments parses one segment per non-empty line, reporting the line index on failure.
func ParseSegments(input []string) ([]Segment, error) {
	segs := make([]Segment, 0, len(input))
	for i, line := range input {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := ParseSegment(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		segs = append(segs, s)
	}
	return segs, nil
}

// Rasterize marks every segment on a grid sized by the endpoints' bounding
// box. Each cell holds the number of segments covering it.
func Rasterize(segs []Segment) (*grid.Grid[int], error) {
	points := make([]grid.Coordinate, 0, 2*len(segs))
	for _, s := range segs {
		if !s.Straight() && !s.diagonal() {
			return nil, fmt.Errorf("%w: %v -> %v", ErrUnsupportedAngle, s.From, s.To)
		}
		points = append(points, s.From, s.To)
	}
	g := grid.FromCoordinates(points, 0)
	for _, s := range segs {
		Mark(g, s)
	}
	return g, nil
}

// Mark adds one to every cell of s, endpoints included. s must lie in g.
func Mark(g *grid.Grid[int], s Segment) {
	d := grid.Direction{DX: sign(s.To.X - s.From.X), DY: sign(s.To.Y - s.From.Y)}
	for c := s.From; ; c = c.Add(d) {
		g.Mutate(c, func(v int) int { return v + 1 })
		if c == s.To {
			return
		}
	}
}

// Overlaps counts cells covered by at least atLeast segments.
func Overlaps(g *grid.Grid[int], atLeast int) int {
	n := 0
	g.ForEachCell(func(v int, _ grid.Coordinate) {
		if v >= atLeast {
			n++
		}
	})
	return n
}

// StraightOnly filters out diagonal segments.
func StraightOnly(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.Straight() {
			out = append(out, s)
		}
	}
	return out
}

// Render draws the coverage counts, with '.' for uncovered cells.
func Render(g *grid.Grid[int]) string {
	return grid.Render(g, "", func(v int) string {
		if v == 0 {
			return "."
		}
		return strconv.Itoa(v)
	})
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
