package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashgrid/pkg/grid"
)

var manual = []string{
	"6,10", "0,14", "9,10", "0,3", "10,4", "4,11", "6,0", "6,12", "4,1",
	"0,13", "10,12", "3,4", "3,0", "8,4", "1,10", "2,14", "8,10", "9,0",
	"",
	"fold along y=7",
	"fold along x=5",
}

func TestFoldManual(t *testing.T) {
	p, err := Parse(manual)
	require.NoError(t, err)
	assert.Equal(t, 15, p.Sheet.Rows())
	assert.Equal(t, 11, p.Sheet.Columns())
	assert.Equal(t, 18, Count(p.Sheet))
	require.Equal(t, []Instruction{{Axis: AxisY, Line: 7}, {Axis: AxisX, Line: 5}}, p.Folds)

	once, err := Fold(p.Sheet, p.Folds[0])
	require.NoError(t, err)
	assert.Equal(t, 17, Count(once))

	done, err := FoldAll(p.Sheet, p.Folds)
	require.NoError(t, err)
	assert.Equal(t, 16, Count(done))
	assert.Equal(t,
		"#####\n"+
			"#...#\n"+
			"#...#\n"+
			"#...#\n"+
			"#####\n"+
			".....\n"+
			".....\n",
		Render(done))
}

func TestFoldBeyondSheetKeepsMarks(t *testing.T) {
	sheet := grid.New(1, 2, func(c grid.Coordinate) bool { return c.X == 1 })
	out, err := Fold(sheet, Instruction{Axis: AxisX, Line: 4})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, false}, out.Values())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]string{"1,x"})
	assert.ErrorIs(t, err, ErrBadDot)

	_, err = Parse([]string{"1,1", "fold along z=3"})
	assert.ErrorIs(t, err, ErrBadInstruction)

	_, err = Parse([]string{"1,1", "fold along y=0"})
	assert.ErrorIs(t, err, ErrBadInstruction)

	_, err = Parse([]string{"", "fold along y=2"})
	assert.ErrorIs(t, err, ErrNoDots)
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "fold along x=5", Instruction{Axis: AxisX, Line: 5}.String())
}
