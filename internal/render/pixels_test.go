package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"flashgrid/pkg/sims/cascade"
)

func TestFillPaletteRGBAClampsIndices(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}, buf)
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{3, 4}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}

func TestPaletteOf(t *testing.T) {
	sim := cascade.New(3, 3)
	assert.Equal(t, sim.Palette(), PaletteOf(sim))
	assert.Equal(t, grayscale, PaletteOf(struct{}{}))
}
