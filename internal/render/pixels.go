package render

import "image/color"

// fillPaletteRGBA converts palette indices into RGBA pixels in buf. Indices
// beyond the palette clamp to its last entry; an empty palette clears buf to
// transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// grayscale is used for sims that do not provide a palette: 0 is black and
// any other value is white.
var grayscale = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// PaletteOf returns the sim's palette when it has one.
func PaletteOf(sim any) []color.RGBA {
	if p, ok := sim.(interface{ Palette() []color.RGBA }); ok {
		if pal := p.Palette(); len(pal) > 0 {
			return pal
		}
	}
	return grayscale
}
