package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim       string
	Scale     int
	TPS       int
	Seed      int64
	Width     int
	Height    int
	Threshold int
	Conn      int
	HUDWidth  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "cascade", Scale: 32, TPS: 4, Seed: 1337, Width: 10, Height: 10, Threshold: 9, Conn: 8, HUDWidth: 200}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "energy above which a cell releases")
	fs.IntVar(&c.Conn, "conn", c.Conn, "neighborhood: 4 or 8")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "side panel width in pixels, 0 hides it")
}

// Options renders the sim settings in the key/value form core.Factory expects.
func (c *Config) Options() map[string]string {
	return map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"threshold": strconv.Itoa(c.Threshold),
		"conn":      strconv.Itoa(c.Conn),
	}
}
