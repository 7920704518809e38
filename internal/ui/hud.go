//go:build ebiten

package ui

import (
	"image/color"

	"flashgrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	headerBaseline = 12
	lineSpacing    = 16
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	return &HUD{sim: sim, width: max(width, 0), title: panelTitle(sim)}
}

// Update refreshes the cached parameter text from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	var snapshot core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snapshot = provider.Parameters()
	}
	h.lines = panelLines(snapshot, paused)
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := max(h.sim.Size().H*max(scale, 1), headerBaseline+lineSpacing*(len(h.lines)+1)+panelPadding)
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.lines {
		y += lineSpacing
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
