package grid

import "strconv"

// Coordinate addresses a single cell. X is the column, Y is the row.
type Coordinate struct {
	X, Y int
}

// Add returns the coordinate offset by d. The result may lie outside any grid.
func (c Coordinate) Add(d Direction) Coordinate {
	return Coordinate{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Coordinate) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}
