package ui

import (
	"strings"

	"flashgrid/pkg/core"
)

var keyHints = []string{
	"space  pause",
	"n      single step",
	"r      reset seed",
	"s      new seed",
	"q      quit",
}

// panelTitle returns "<Name> Controls", or "Controls" when the sim has no name.
func panelTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

// panelLines lays out the panel text below the title.
func panelLines(snapshot core.ParameterSnapshot, paused bool) []string {
	lines := snapshot.Lines()
	if len(lines) == 0 {
		lines = []string{"No parameters"}
	}
	if paused {
		lines = append(lines, "", "PAUSED")
	}
	lines = append(lines, "")
	return append(lines, keyHints...)
}
