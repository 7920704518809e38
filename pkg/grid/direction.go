package grid

// Direction is a relative offset between two cells.
type Direction struct {
	DX, DY int
}

var (
	TopLeft     = Direction{DX: -1, DY: -1}
	Top         = Direction{DX: 0, DY: -1}
	TopRight    = Direction{DX: 1, DY: -1}
	Left        = Direction{DX: -1, DY: 0}
	Right       = Direction{DX: 1, DY: 0}
	BottomLeft  = Direction{DX: -1, DY: 1}
	Bottom      = Direction{DX: 0, DY: 1}
	BottomRight = Direction{DX: 1, DY: 1}
)

// Connectivity selects which neighbors a cell has.
type Connectivity int

const (
	// Conn4 uses the orthogonal neighbors only.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals.
	Conn8
)

var (
	orthogonal = []Direction{Top, Left, Right, Bottom}
	allEight   = []Direction{TopLeft, Top, TopRight, Left, Right, BottomLeft, Bottom, BottomRight}
)

// Directions returns the offsets for conn in canonical order: top-left, top,
// top-right, left, right, bottom-left, bottom, bottom-right (Conn4 keeps the
// orthogonal subset in the same order).
func (conn Connectivity) Directions() []Direction {
	if conn == Conn8 {
		return allEight
	}
	return orthogonal
}

func (conn Connectivity) String() string {
	if conn == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Step returns c moved by d, and false if the result leaves the grid.
func (g *Grid[T]) Step(c Coordinate, d Direction) (Coordinate, bool) {
	n := c.Add(d)
	return n, g.InBounds(n)
}

// Neighbors returns the in-bounds neighbors of c under conn. Off-grid offsets
// are dropped, so a corner has 3 (Conn8) or 2 (Conn4) neighbors.
func (g *Grid[T]) Neighbors(c Coordinate, conn Connectivity) []Coordinate {
	dirs := conn.Directions()
	out := make([]Coordinate, 0, len(dirs))
	for _, d := range dirs {
		if n, ok := g.Step(c, d); ok {
			out = append(out, n)
		}
	}
	return out
}
