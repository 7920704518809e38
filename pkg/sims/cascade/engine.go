package cascade

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"flashgrid/pkg/grid"
)

var (
	// ErrInvalidConfig reports a rule that cannot be simulated.
	ErrInvalidConfig = errors.New("cascade: invalid config")
	// ErrNotSynchronized reports that no step released every cell within the limit.
	ErrNotSynchronized = errors.New("cascade: no synchronized step within limit")
)

// InvariantError is the panic value raised when the released-marker
// bookkeeping is broken. It is never returned as an ordinary error.
type InvariantError struct {
	Step       int
	Coordinate grid.Coordinate
	Reason     string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("cascade: invariant violated in step %d at %v: %s", e.Step, e.Coordinate, e.Reason)
}

// Report summarizes one step.
type Report struct {
	// Step is the 1-based index of the step across the engine's lifetime.
	Step int
	// Releases counts the cells that released during the step.
	Releases int
	// Released lists the released coordinates in release order.
	Released []grid.Coordinate
	// Synchronized is true when every cell released during the step.
	Synchronized bool
}

// Engine advances a grid of energy levels one step at a time. It owns the grid
// for its whole lifetime; callers read it through Grid between steps.
type Engine[T constraints.Integer] struct {
	cfg       Config
	grid      *grid.Grid[T]
	threshold T
	baseline  T

	released *grid.Grid[bool]
	pending  []grid.Coordinate

	steps int
	total int
}

// NewEngine wraps g with the release rule in cfg.
func NewEngine[T constraints.Integer](g *grid.Grid[T], cfg Config) (*Engine[T], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkCellRange[T](cfg); err != nil {
		return nil, err
	}
	return &Engine[T]{
		cfg:       cfg,
		grid:      g,
		threshold: T(cfg.Threshold),
		baseline:  T(cfg.Baseline),
		released:  grid.New[bool](g.Rows(), g.Columns(), nil),
	}, nil
}

// checkCellRange rejects rules T cannot represent. A cell that crosses the
// threshold can still be fed by every neighbor before it is released, so the
// threshold needs that much headroom below the type's maximum.
func checkCellRange[T constraints.Integer](cfg Config) error {
	peak := cfg.Threshold + 1 + len(cfg.Connectivity.Directions())
	for _, v := range []int{cfg.Baseline, cfg.Threshold, peak} {
		if int(T(v)) != v {
			return fmt.Errorf("%w: threshold %d leaves no room for %d in %T cells", ErrInvalidConfig, cfg.Threshold, v, T(0))
		}
	}
	return nil
}

// ParseEngine builds an engine from lines of digits.
func ParseEngine(lines []string, cfg Config) (*Engine[int], error) {
	g, err := grid.ParseDigits(lines)
	if err != nil {
		return nil, err
	}
	return NewEngine(g, cfg)
}

// Grid exposes the simulated grid. It must not be mutated while a step runs.
func (e *Engine[T]) Grid() *grid.Grid[T] { return e.grid }

// Config returns the rule the engine was built with.
func (e *Engine[T]) Config() Config { return e.cfg }

// Steps returns how many steps have completed.
func (e *Engine[T]) Steps() int { return e.steps }

// TotalReleases returns the releases accumulated over all completed steps.
func (e *Engine[T]) TotalReleases() int { return e.total }

// Step increments every cell, resolves the resulting chain of releases until
// no cell exceeds the threshold, and reports what released.
func (e *Engine[T]) Step() Report {
	e.steps++
	rep := Report{Step: e.steps}

	e.released.ForEachCell(func(_ bool, c grid.Coordinate) { e.released.Set(c, false) })
	e.grid.ForEachCell(func(_ T, c grid.Coordinate) { e.grid.Mutate(c, increment[T]) })

	e.grid.ForEachCell(func(_ T, c grid.Coordinate) {
		if e.isReleased(c) || !e.exceeds(c) {
			return
		}
		e.resolve(c, &rep)
	})

	rep.Synchronized = rep.Releases == e.grid.Size()
	e.total += rep.Releases
	return rep
}

// resolve drains a worklist seeded with start. A coordinate may be queued
// more than once when several neighbors push it; the released marker makes
// every pop after the first a no-op.
func (e *Engine[T]) resolve(start grid.Coordinate, rep *Report) {
	e.pending = append(e.pending[:0], start)
	for len(e.pending) > 0 {
		c := e.pending[len(e.pending)-1]
		e.pending = e.pending[:len(e.pending)-1]
		if e.isReleased(c) {
			continue
		}
		e.release(c, rep)
		for _, n := range e.grid.Neighbors(c, e.cfg.Connectivity) {
			if e.isReleased(n) {
				continue
			}
			e.grid.Mutate(n, increment[T])
			if e.exceeds(n) {
				e.pending = append(e.pending, n)
			}
		}
	}
}

// release marks c, resets it to the baseline and counts it. The reset happens
// before any neighbor is touched.
func (e *Engine[T]) release(c grid.Coordinate, rep *Report) {
	if e.isReleased(c) {
		panic(&InvariantError{Step: rep.Step, Coordinate: c, Reason: "released twice"})
	}
	if rep.Releases >= e.grid.Size() {
		panic(&InvariantError{Step: rep.Step, Coordinate: c, Reason: "release count exceeds cell count"})
	}
	e.released.Set(c, true)
	e.grid.Set(c, e.baseline)
	rep.Releases++
	rep.Released = append(rep.Released, c)
}

func (e *Engine[T]) isReleased(c grid.Coordinate) bool {
	return e.released.GetOrDefault(c, false)
}

func (e *Engine[T]) exceeds(c grid.Coordinate) bool {
	v, ok := e.grid.Get(c)
	return ok && v > e.threshold
}

func increment[T constraints.Integer](v T) T { return v + 1 }

// Run performs n steps and returns the releases they produced.
func (e *Engine[T]) Run(n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += e.Step().Releases
	}
	return sum
}

// FirstSynchronizedStep steps until every cell releases in the same step and
// returns that step's index. It gives up after limit steps.
func (e *Engine[T]) FirstSynchronizedStep(limit int) (int, error) {
	for i := 0; i < limit; i++ {
		if rep := e.Step(); rep.Synchronized {
			return rep.Step, nil
		}
	}
	return 0, fmt.Errorf("%w: %d steps", ErrNotSynchronized, limit)
}
