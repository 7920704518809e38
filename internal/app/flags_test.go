package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashgrid/pkg/core"
	"flashgrid/pkg/sims/cascade"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "20", "-h", "12", "-conn", "4", "-seed", "7", "-tps", "10"}))

	assert.Equal(t, "cascade", cfg.Sim)
	assert.Equal(t, 10, cfg.TPS)
	assert.Equal(t, map[string]string{
		"w": "20", "h": "12", "seed": "7", "threshold": "9", "conn": "4",
	}, cfg.Options())
}

func TestOptionsBuildRegisteredSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 6, 4

	factory, ok := core.Lookup(cfg.Sim)
	require.True(t, ok)
	sim := factory(cfg.Options())
	assert.Equal(t, core.Size{W: 6, H: 4}, sim.Size())
	assert.Len(t, sim.Cells(), 24)

	_, isCascade := sim.(*cascade.Sim)
	assert.True(t, isCascade)
}
