package cascade

import "image/color"

const (
	energyLevels   = 10
	displayRelease = energyLevels
)

var cascadePalette = buildPalette()

// Palette exposes the colors indexed by Cells: ten energy shades plus a
// highlight for cells that released in the last step.
func (s *Sim) Palette() []color.RGBA {
	return cascadePalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, energyLevels+1)
	for i := 0; i < energyLevels; i++ {
		v := uint8(20 + i*18)
		palette[i] = color.RGBA{R: v / 3, G: v / 2, B: v, A: 255}
	}
	palette[displayRelease] = color.RGBA{R: 255, G: 240, B: 160, A: 255}
	return palette
}

// encodeDisplayValue scales an energy level onto the ten shades.
func encodeDisplayValue(level, threshold int, released bool) uint8 {
	if released {
		return displayRelease
	}
	if threshold <= 0 {
		threshold = 1
	}
	idx := level * (energyLevels - 1) / threshold
	return uint8(min(max(idx, 0), energyLevels-1))
}

func (s *Sim) rebuildDisplay() {
	values := s.engine.Grid().Values()
	for i, v := range values {
		s.display[i] = encodeDisplayValue(int(v), s.cfg.Threshold, false)
	}
	w := s.cfg.Width
	for _, c := range s.last.Released {
		s.display[c.Y*w+c.X] = displayRelease
	}
}
