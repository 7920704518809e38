package cascade

import (
	"fmt"
	"strconv"

	"flashgrid/pkg/grid"
)

// Config holds the release rule and, for the viewer, the random board shape.
type Config struct {
	Width  int
	Height int
	Seed   int64

	// Threshold is the value a cell must exceed to release.
	Threshold int
	// Baseline is the value a released cell resets to.
	Baseline     int
	Connectivity grid.Connectivity
}

// DefaultConfig returns the canonical rule: threshold 9, baseline 0, eight neighbors.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       10,
		Seed:         1337,
		Threshold:    9,
		Baseline:     0,
		Connectivity: grid.Conn8,
	}
}

// Validate rejects rules under which a released cell would immediately qualify again.
func (c Config) Validate() error {
	if c.Baseline < 0 {
		return fmt.Errorf("%w: baseline %d is negative", ErrInvalidConfig, c.Baseline)
	}
	if c.Baseline > c.Threshold {
		return fmt.Errorf("%w: baseline %d exceeds threshold %d", ErrInvalidConfig, c.Baseline, c.Threshold)
	}
	if c.Connectivity != grid.Conn4 && c.Connectivity != grid.Conn8 {
		return fmt.Errorf("%w: unknown connectivity %d", ErrInvalidConfig, c.Connectivity)
	}
	return nil
}

// ParseConnectivity accepts "4"/"8" and the conn4/conn8 spellings.
func ParseConnectivity(s string) (grid.Connectivity, error) {
	switch s {
	case "4", "conn4":
		return grid.Conn4, nil
	case "8", "conn8":
		return grid.Conn8, nil
	}
	return 0, fmt.Errorf("%w: unknown connectivity %q", ErrInvalidConfig, s)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < 255 {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["baseline"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= c.Threshold {
			c.Baseline = parsed
		}
	}
	if v, ok := cfg["conn"]; ok {
		if parsed, err := ParseConnectivity(v); err == nil {
			c.Connectivity = parsed
		}
	}
	return c
}
