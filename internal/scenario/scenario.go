// Package scenario describes grid puzzles to solve, either from CLI flags or
// from HCL scenario files, and executes them against the simulations.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"flashgrid/internal/climb"
	"flashgrid/internal/ctxlog"
	"flashgrid/internal/fold"
	"flashgrid/internal/lines"
	"flashgrid/pkg/grid"
	"flashgrid/pkg/sims/cascade"
)

const (
	KindCascade = "cascade"
	KindLines   = "lines"
	KindFold    = "fold"
	KindClimb   = "climb"
)

var (
	// ErrUnknownKind reports a scenario kind no simulation handles.
	ErrUnknownKind = errors.New("scenario: unknown kind")
	// ErrUnknownQuery reports a query the scenario's kind does not answer.
	ErrUnknownQuery = errors.New("scenario: unknown query")
	// ErrExpectation reports a result that differs from the scenario's expect value.
	ErrExpectation = errors.New("scenario: unexpected result")
)

// Scenario is one puzzle: which simulation, which input, which answer.
// Optional fields left nil take the simulation defaults.
type Scenario struct {
	Name  string `hcl:"name,label"`
	Kind  string `hcl:"kind"`
	Input string `hcl:"input,optional"`
	Query string `hcl:"query,optional"`

	Steps        *int `hcl:"steps,optional"`
	Limit        *int `hcl:"limit,optional"`
	Threshold    *int `hcl:"threshold,optional"`
	Baseline     *int `hcl:"baseline,optional"`
	Connectivity *int `hcl:"connectivity,optional"`

	Straight   *bool `hcl:"straight,optional"`
	MinOverlap *int  `hcl:"min_overlap,optional"`

	Expect *int `hcl:"expect,optional"`
}

// Result is either a number or a rendered grid.
type Result struct {
	Value    int
	Text     string
	Rendered bool
}

func (r Result) String() string {
	if r.Rendered {
		return r.Text
	}
	return strconv.Itoa(r.Value)
}

func numeric(v int) Result { return Result{Value: v} }

func rendered(text string) Result { return Result{Text: text, Rendered: true} }

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// CascadeConfig resolves the cascade rule for sc.
func (sc *Scenario) CascadeConfig() (cascade.Config, error) {
	cfg := cascade.DefaultConfig()
	cfg.Threshold = intOr(sc.Threshold, cfg.Threshold)
	cfg.Baseline = intOr(sc.Baseline, cfg.Baseline)
	if sc.Connectivity != nil {
		conn, err := cascade.ParseConnectivity(strconv.Itoa(*sc.Connectivity))
		if err != nil {
			return cfg, err
		}
		cfg.Connectivity = conn
	}
	return cfg, cfg.Validate()
}

// Execute solves sc against the already-read input lines and checks Expect.
func Execute(ctx context.Context, sc *Scenario, input []string) (Result, error) {
	logger := ctxlog.FromContext(ctx).With("scenario", sc.Name, "kind", sc.Kind)
	logger.Debug("Executing scenario.", "query", sc.Query, "lines", len(input))

	var res Result
	var err error
	switch sc.Kind {
	case KindCascade:
		res, err = runCascade(sc, input)
	case KindLines:
		res, err = runLines(sc, input)
	case KindFold:
		res, err = runFold(sc, input)
	case KindClimb:
		res, err = runClimb(sc, input)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownKind, sc.Kind)
	}
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	if sc.Expect != nil && !res.Rendered && res.Value != *sc.Expect {
		return res, fmt.Errorf("scenario %s: %w: got %d, want %d", sc.Name, ErrExpectation, res.Value, *sc.Expect)
	}
	logger.Debug("Scenario finished.", "result", res.Value, "rendered", res.Rendered)
	return res, nil
}

func runCascade(sc *Scenario, input []string) (Result, error) {
	cfg, err := sc.CascadeConfig()
	if err != nil {
		return Result{}, err
	}
	engine, err := cascade.ParseEngine(input, cfg)
	if err != nil {
		return Result{}, err
	}
	switch sc.Query {
	case "", "total":
		return numeric(engine.Run(intOr(sc.Steps, 100))), nil
	case "sync":
		step, err := engine.FirstSynchronizedStep(intOr(sc.Limit, 10000))
		return numeric(step), err
	case "render":
		engine.Run(intOr(sc.Steps, 0))
		return rendered(grid.RenderDigits(engine.Grid())), nil
	}
	return Result{}, fmt.Errorf("%w: %q for %s", ErrUnknownQuery, sc.Query, sc.Kind)
}

func runLines(sc *Scenario, input []string) (Result, error) {
	segs, err := lines.ParseSegments(input)
	if err != nil {
		return Result{}, err
	}
	if sc.Straight != nil && *sc.Straight {
		segs = lines.StraightOnly(segs)
	}
	g, err := lines.Rasterize(segs)
	if err != nil {
		return Result{}, err
	}
	switch sc.Query {
	case "", "overlaps":
		return numeric(lines.Overlaps(g, intOr(sc.MinOverlap, 2))), nil
	case "render":
		return rendered(lines.Render(g)), nil
	}
	return Result{}, fmt.Errorf("%w: %q for %s", ErrUnknownQuery, sc.Query, sc.Kind)
}

func runFold(sc *Scenario, input []string) (Result, error) {
	paper, err := fold.Parse(input)
	if err != nil {
		return Result{}, err
	}
	switch sc.Query {
	case "", "first":
		if len(paper.Folds) == 0 {
			return numeric(fold.Count(paper.Sheet)), nil
		}
		sheet, err := fold.Fold(paper.Sheet, paper.Folds[0])
		if err != nil {
			return Result{}, err
		}
		return numeric(fold.Count(sheet)), nil
	case "count", "render":
		sheet, err := fold.FoldAll(paper.Sheet, paper.Folds)
		if err != nil {
			return Result{}, err
		}
		if sc.Query == "count" {
			return numeric(fold.Count(sheet)), nil
		}
		return rendered(fold.Render(sheet)), nil
	}
	return Result{}, fmt.Errorf("%w: %q for %s", ErrUnknownQuery, sc.Query, sc.Kind)
}

func runClimb(sc *Scenario, input []string) (Result, error) {
	h, err := climb.Parse(input)
	if err != nil {
		return Result{}, err
	}
	var n int
	switch sc.Query {
	case "", "start":
		n, err = h.ShortestPath()
	case "any":
		n, err = h.ShortestFromAny()
	default:
		return Result{}, fmt.Errorf("%w: %q for %s", ErrUnknownQuery, sc.Query, sc.Kind)
	}
	return numeric(n), err
}
