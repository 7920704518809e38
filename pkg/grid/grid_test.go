package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashgrid/pkg/grid"
)

func TestGetNeverPanics(t *testing.T) {
	g := grid.New(3, 4, func(c grid.Coordinate) int { return c.Y*10 + c.X })

	for y := -2; y < 6; y++ {
		for x := -2; x < 7; x++ {
			c := grid.Coordinate{X: x, Y: y}
			require.NotPanics(t, func() { g.Get(c) })
			v, ok := g.Get(c)
			assert.Equal(t, g.InBounds(c), ok, "Get(%v) presence", c)
			if ok {
				assert.Equal(t, y*10+x, v)
			}
		}
	}
}

func TestGetOrDefault(t *testing.T) {
	g := grid.New(2, 2, func(grid.Coordinate) int { return 7 })
	assert.Equal(t, 7, g.GetOrDefault(grid.Coordinate{X: 1, Y: 1}, -1))
	assert.Equal(t, -1, g.GetOrDefault(grid.Coordinate{X: 2, Y: 0}, -1))
	assert.Equal(t, -1, g.GetOrDefault(grid.Coordinate{X: 0, Y: -1}, -1))
}

func TestSetAndMutateOutOfBoundsPanic(t *testing.T) {
	g := grid.New[int](2, 3, nil)
	outside := grid.Coordinate{X: 3, Y: 0}

	require.PanicsWithError(t, "grid: Set at (3,0) outside 3x2 grid", func() { g.Set(outside, 1) })
	require.Panics(t, func() { g.Mutate(outside, func(v int) int { return v + 1 }) })
	require.Panics(t, func() { g.Set(grid.Coordinate{X: -1, Y: 1}, 1) })

	g.Set(grid.Coordinate{X: 2, Y: 1}, 5)
	g.Mutate(grid.Coordinate{X: 2, Y: 1}, func(v int) int { return v * 3 })
	v, ok := g.Get(grid.Coordinate{X: 2, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 15, v)
}

func TestNewRejectsEmptyDimensions(t *testing.T) {
	assert.Panics(t, func() { grid.New[int](0, 3, nil) })
	assert.Panics(t, func() { grid.New[int](3, -1, nil) })
}

func TestForEachCellRowMajor(t *testing.T) {
	g := grid.New(2, 3, func(c grid.Coordinate) rune { return rune('a' + c.Y*3 + c.X) })

	var visited []grid.Coordinate
	var values []rune
	g.ForEachCell(func(v rune, c grid.Coordinate) {
		visited = append(visited, c)
		values = append(values, v)
	})

	want := []grid.Coordinate{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("traversal order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "abcdef", string(values))
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, 6, g.Size())
}

func TestCloneIsIndependent(t *testing.T) {
	g := grid.New(2, 2, func(grid.Coordinate) int { return 1 })
	c := g.Clone()
	c.Set(grid.Coordinate{X: 0, Y: 0}, 9)

	assert.Equal(t, []int{1, 1, 1, 1}, g.Values())
	assert.Equal(t, []int{9, 1, 1, 1}, c.Values())
}

func TestNeighborCounts(t *testing.T) {
	g := grid.New[int](3, 4, nil)
	cases := []struct {
		name  string
		at    grid.Coordinate
		conn  grid.Connectivity
		count int
	}{
		{"CornerConn8", grid.Coordinate{X: 0, Y: 0}, grid.Conn8, 3},
		{"CornerConn4", grid.Coordinate{X: 3, Y: 2}, grid.Conn4, 2},
		{"EdgeConn8", grid.Coordinate{X: 1, Y: 0}, grid.Conn8, 5},
		{"EdgeConn4", grid.Coordinate{X: 0, Y: 1}, grid.Conn4, 3},
		{"InteriorConn8", grid.Coordinate{X: 1, Y: 1}, grid.Conn8, 8},
		{"InteriorConn4", grid.Coordinate{X: 2, Y: 1}, grid.Conn4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, g.Neighbors(tc.at, tc.conn), tc.count)
		})
	}
}

func TestNeighborsCanonicalOrder(t *testing.T) {
	g := grid.New[int](3, 3, nil)
	center := grid.Coordinate{X: 1, Y: 1}

	want8 := []grid.Coordinate{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if diff := cmp.Diff(want8, g.Neighbors(center, grid.Conn8)); diff != "" {
		t.Errorf("Conn8 order (-want +got):\n%s", diff)
	}
	want4 := []grid.Coordinate{{1, 0}, {0, 1}, {2, 1}, {1, 2}}
	if diff := cmp.Diff(want4, g.Neighbors(center, grid.Conn4)); diff != "" {
		t.Errorf("Conn4 order (-want +got):\n%s", diff)
	}
}

func TestNeighborsAlwaysPresent(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {5, 7}} {
		g := grid.New[int](dims[0], dims[1], nil)
		for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
			g.ForEachCell(func(_ int, c grid.Coordinate) {
				for _, n := range g.Neighbors(c, conn) {
					_, ok := g.Get(n)
					require.True(t, ok, "neighbor %v of %v in %dx%d", n, c, dims[1], dims[0])
					require.NotEqual(t, c, n)
				}
			})
		}
	}
}

func TestBoundingBoxAndFromCoordinates(t *testing.T) {
	coords := []grid.Coordinate{{0, 9}, {8, 0}, {3, 4}}
	maxX, maxY := grid.BoundingBox(coords)
	assert.Equal(t, 8, maxX)
	assert.Equal(t, 9, maxY)

	g := grid.FromCoordinates(coords, false)
	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, 9, g.Columns())

	x, y := grid.BoundingBox(nil)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestParseDigitsErrors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
		row   int
	}{
		{"Empty", nil, grid.ErrEmptyGrid, -1},
		{"EmptyFirstRow", []string{""}, grid.ErrEmptyGrid, -1},
		{"Ragged", []string{"123", "12", "123"}, grid.ErrNonRectangular, 1},
		{"NotADigit", []string{"123", "456", "7x9"}, grid.ErrInvalidDigit, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseDigits(tc.lines)
			require.ErrorIs(t, err, tc.err)
			var perr *grid.ParseError
			if tc.row < 0 {
				assert.False(t, errors.As(err, &perr))
				return
			}
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.row, perr.Row)
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	lines := []string{"5483143223", "2745854711", "5264556173"}
	g, err := grid.ParseDigits(lines)
	require.NoError(t, err)

	text := grid.RenderDigits(g)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", text)

	back, err := grid.ParseDigits(strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
	require.NoError(t, err)
	if diff := cmp.Diff(g.Values(), back.Values()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDigitsSeparatesWideValues(t *testing.T) {
	g := grid.New(2, 2, func(c grid.Coordinate) int { return c.X*11 + c.Y })
	assert.Equal(t, "0 11\n1 12\n", grid.RenderDigits(g))

	g.Set(grid.Coordinate{X: 1, Y: 0}, -1)
	assert.Equal(t, "0 -1\n1 12\n", grid.RenderDigits(g))
}

func TestRenderDelimiter(t *testing.T) {
	g := grid.New(2, 3, func(c grid.Coordinate) int { return c.X + c.Y })
	assert.Equal(t, "0,1,2\n1,2,3\n", grid.Render(g, ",", nil))
}

func TestReadLines(t *testing.T) {
	lines, err := grid.ReadLines(strings.NewReader("ab\r\ncd\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "cd"}, lines)

	g, err := grid.ParseRunes(lines)
	require.NoError(t, err)
	v, _ := g.Get(grid.Coordinate{X: 1, Y: 1})
	assert.Equal(t, 'd', v)
}

func TestReadLinesLongRow(t *testing.T) {
	row := strings.Repeat("5", 200_000)
	lines, err := grid.ReadLines(strings.NewReader(row + "\n" + row + "\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	g, err := grid.ParseDigits(lines)
	require.NoError(t, err)
	assert.Equal(t, 200_000, g.Columns())
}
