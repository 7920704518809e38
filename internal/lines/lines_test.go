package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashgrid/pkg/grid"
)

var vents = []string{
	"0,9 -> 5,9",
	"8,0 -> 0,8",
	"9,4 -> 3,4",
	"2,2 -> 2,1",
	"7,0 -> 7,4",
	"6,4 -> 2,0",
	"0,9 -> 2,9",
	"3,4 -> 1,4",
	"0,0 -> 8,8",
	"5,5 -> 8,2",
}

func TestStraightOverlaps(t *testing.T) {
	segs, err := ParseSegments(vents)
	require.NoError(t, err)

	g, err := Rasterize(StraightOnly(segs))
	require.NoError(t, err)
	assert.Equal(t, 5, Overlaps(g, 2))
}

func TestDiagonalOverlaps(t *testing.T) {
	segs, err := ParseSegments(vents)
	require.NoError(t, err)

	g, err := Rasterize(segs)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, 10, g.Columns())
	assert.Equal(t, 12, Overlaps(g, 2))
	assert.Equal(t,
		"1.1....11.\n"+
			".111...2..\n"+
			"..2.1.111.\n"+
			"...1.2.2..\n"+
			".112313211\n"+
			"...1.2....\n"+
			"..1...1...\n"+
			".1.....1..\n"+
			"1.......1.\n"+
			"222111....\n",
		Render(g))
}

func TestParseSegmentErrors(t *testing.T) {
	for _, line := range []string{"1,2 3,4", "1,2 -> 3", "a,1 -> 2,2", "-1,0 -> 2,2"} {
		_, err := ParseSegment(line)
		assert.ErrorIs(t, err, ErrBadSegment, line)
	}

	_, err := ParseSegments([]string{"0,0 -> 1,1", "oops"})
	require.ErrorIs(t, err, ErrBadSegment)
	assert.Contains(t, err.Error(), "line 1")
}

func TestRasterizeRejectsSteepSegments(t *testing.T) {
	_, err := Rasterize([]Segment{{From: grid.Coordinate{X: 0, Y: 0}, To: grid.Coordinate{X: 1, Y: 3}}})
	assert.ErrorIs(t, err, ErrUnsupportedAngle)
}

func TestMarkSinglePoint(t *testing.T) {
	g := grid.New[int](2, 2, nil)
	Mark(g, Segment{From: grid.Coordinate{X: 1, Y: 1}, To: grid.Coordinate{X: 1, Y: 1}})
	assert.Equal(t, []int{0, 0, 0, 1}, g.Values())
}
