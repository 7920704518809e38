// Command flashgrid solves grid puzzles headlessly: energy cascades, line
// overlaps, paper folds and heightmap climbs, from flags or HCL scenario files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"flashgrid/internal/cli"
	"flashgrid/internal/ctxlog"
	"flashgrid/internal/scenario"
	"flashgrid/pkg/grid"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stdin, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it with buffers.
func run(out io.Writer, in io.Reader, args []string) (err error) {
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	// Broken cascade invariants panic; report them as a failed run.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("simulation panicked: %v", r)
		}
	}()

	if cfg.Command == cli.CommandRun {
		f, err := scenario.Load(ctx, cfg.ScenarioPath, cfg.Vars)
		if err != nil {
			return err
		}
		return scenario.Run(ctx, f, out)
	}

	input, err := readInput(cfg.Input, in)
	if err != nil {
		return err
	}
	res, err := scenario.Execute(ctx, cfg.Scenario, input)
	if err != nil {
		return err
	}
	if res.Rendered {
		_, err = io.WriteString(out, res.Text)
		return err
	}
	_, err = fmt.Fprintln(out, res.Value)
	return err
}

func readInput(path string, stdin io.Reader) ([]string, error) {
	if path == "" {
		return grid.ReadLines(stdin)
	}
	return scenario.ReadInput(path)
}
