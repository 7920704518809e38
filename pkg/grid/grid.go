package grid

import "fmt"

// Grid stores a fixed rows x columns block of cells in row-major order.
// Cells are addressed by Coordinate only; the backing slice is never exposed.
type Grid[T any] struct {
	rows, cols int
	data       []T
}

// New allocates a grid and fills every cell with init(coordinate), visiting
// cells in row-major order. A nil init leaves the zero value in place.
func New[T any](rows, columns int, init func(Coordinate) T) *Grid[T] {
	if rows <= 0 || columns <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", rows, columns))
	}
	g := &Grid[T]{rows: rows, cols: columns, data: make([]T, rows*columns)}
	if init != nil {
		for y := 0; y < rows; y++ {
			for x := 0; x < columns; x++ {
				g.data[y*columns+x] = init(Coordinate{X: x, Y: y})
			}
		}
	}
	return g
}

// FromCoordinates sizes a grid from the bounding box of coords and fills it with def.
func FromCoordinates[T any](coords []Coordinate, def T) *Grid[T] {
	maxX, maxY := BoundingBox(coords)
	return New(maxY+1, maxX+1, func(Coordinate) T { return def })
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid[T]) Columns() int { return g.cols }

// Size returns rows * columns.
func (g *Grid[T]) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within [0, columns) x [0, rows).
func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

func (g *Grid[T]) index(c Coordinate) int { return c.Y*g.cols + c.X }

// Get returns the value at c. The boolean is false when c is out of bounds.
func (g *Grid[T]) Get(c Coordinate) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.data[g.index(c)], true
}

// GetOrDefault returns the value at c, or def when c is out of bounds.
func (g *Grid[T]) GetOrDefault(c Coordinate, def T) T {
	if v, ok := g.Get(c); ok {
		return v
	}
	return def
}

// Set writes v to c. Writing outside the grid is a programming error and panics.
func (g *Grid[T]) Set(c Coordinate, v T) {
	g.mustContain(c, "Set")
	g.data[g.index(c)] = v
}

// Mutate replaces the value at c with f(value). It panics when c is out of bounds.
func (g *Grid[T]) Mutate(c Coordinate, f func(T) T) {
	g.mustContain(c, "Mutate")
	i := g.index(c)
	g.data[i] = f(g.data[i])
}

// ForEachCell visits every cell in row-major order: y ascending, then x ascending.
func (g *Grid[T]) ForEachCell(f func(T, Coordinate)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			f(g.data[y*g.cols+x], Coordinate{X: x, Y: y})
		}
	}
}

// Values returns a row-major copy of the cell values.
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.data))
	copy(out, g.data)
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{rows: g.rows, cols: g.cols, data: g.Values()}
}

func (g *Grid[T]) mustContain(c Coordinate, op string) {
	if !g.InBounds(c) {
		panic(&BoundsError{Op: op, Coordinate: c, Rows: g.rows, Columns: g.cols})
	}
}
