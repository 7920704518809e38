package cascade

import (
	"strconv"

	"flashgrid/pkg/core"
	"flashgrid/pkg/grid"
)

// Sim adapts an Engine over a random board to the core.Sim contract used by the viewer.
type Sim struct {
	cfg     Config
	engine  *Engine[uint8]
	display []uint8
	last    Report
}

// New returns a cascade simulation with the provided dimensions using defaults.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a cascade simulation configured from the provided
// options. An invalid rule falls back to the default rule.
func NewWithConfig(cfg Config) *Sim {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultConfig().Width, DefaultConfig().Height
	}
	if cfg.Validate() != nil || checkCellRange[uint8](cfg) != nil {
		def := DefaultConfig()
		cfg.Threshold, cfg.Baseline, cfg.Connectivity = def.Threshold, def.Baseline, def.Connectivity
	}
	s := &Sim{cfg: cfg, display: make([]uint8, cfg.Width*cfg.Height)}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "cascade" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the palette indices of the current state.
func (s *Sim) Cells() []uint8 { return s.display }

// Engine exposes the underlying engine.
func (s *Sim) Engine() *Engine[uint8] { return s.engine }

// Last returns the report of the most recent step.
func (s *Sim) Last() Report { return s.last }

// Reset fills the board with random digits. A zero seed reuses the configured seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	rng := core.NewRNG(seed)
	limit := s.cfg.Threshold + 1
	g := grid.New(s.cfg.Height, s.cfg.Width, func(grid.Coordinate) uint8 {
		return uint8(rng.IntN(limit))
	})
	engine, err := NewEngine(g, s.cfg)
	if err != nil {
		panic(err)
	}
	s.engine = engine
	s.last = Report{}
	s.rebuildDisplay()
}

// Step advances the board by one cascade step.
func (s *Sim) Step() {
	s.last = s.engine.Step()
	s.rebuildDisplay()
}

// Parameters reports the rule and the running counters.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("threshold", "Threshold", s.cfg.Threshold),
				intParam("baseline", "Baseline", s.cfg.Baseline),
				{Key: "conn", Label: "Neighbors", Type: core.ParamTypeString, Value: s.cfg.Connectivity.String()},
			},
		},
		{
			Name: "Counters",
			Params: []core.Parameter{
				intParam("step", "Step", s.engine.Steps()),
				intParam("releases", "Last releases", s.last.Releases),
				intParam("total", "Total releases", s.engine.TotalReleases()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func init() {
	core.Register("cascade", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
