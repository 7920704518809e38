package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"flashgrid/internal/scenario"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Command names.
const (
	CommandRun = "run"
)

// Config is the parsed command line.
type Config struct {
	LogFormat string
	LogLevel  string
	Command   string

	// Input is the puzzle input path; empty means stdin.
	Input string
	// Scenario is set for the puzzle commands.
	Scenario *scenario.Scenario

	// ScenarioPath and Vars are set for the run command.
	ScenarioPath string
	Vars         map[string]string
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

func (l kvList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = v
	}
	return m
}

const usage = `
flashgrid - grid cascade simulator and grid puzzle solver.

Usage:
  flashgrid [options] <command> [command options] [INPUT]

Commands:
  cascade   energy cascade: total releases, first synchronized step or grid
  lines     overlapping line segments on a grid
  fold      transparent paper folding
  climb     shortest climb across a heightmap
  run       execute the scenarios of an HCL file

INPUT defaults to standard input.

Options:
`

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("flashgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	cfg.Command = flagSet.Arg(0)
	rest := flagSet.Args()[1:]

	var err error
	var exit bool
	switch cfg.Command {
	case scenario.KindCascade:
		exit, err = parseCascade(cfg, rest, output)
	case scenario.KindLines:
		exit, err = parseLines(cfg, rest, output)
	case scenario.KindFold:
		exit, err = parseFold(cfg, rest, output)
	case scenario.KindClimb:
		exit, err = parseClimb(cfg, rest, output)
	case CommandRun:
		exit, err = parseRun(cfg, rest, output)
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cfg.Command)}
	}
	if err != nil || exit {
		return nil, exit, err
	}
	slog.Debug("CLI parser finished successfully.", "command", cfg.Command, "input", cfg.Input)
	return cfg, false, nil
}

func newCommandSet(name string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("flashgrid "+name, flag.ContinueOnError)
	fs.SetOutput(output)
	return fs
}

// finish parses the command flags and takes the optional INPUT argument.
func finish(cfg *Config, fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return false, &ExitError{Code: 2, Message: fmt.Sprintf("%s: too many arguments", fs.Name())}
	}
	return false, nil
}

// setInt records an int flag on the scenario only when the user passed it.
func setInt(fs *flag.FlagSet, name string, v int, dst **int) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			*dst = &v
		}
	})
}

func parseCascade(cfg *Config, args []string, output io.Writer) (bool, error) {
	fs := newCommandSet(scenario.KindCascade, output)
	steps := fs.Int("steps", 100, "Number of steps to simulate.")
	sync := fs.Bool("sync", false, "Report the first step in which every cell releases.")
	limit := fs.Int("limit", 10000, "Give up on -sync after this many steps.")
	render := fs.Bool("render", false, "Print the grid after -steps steps instead of a count.")
	threshold := fs.Int("threshold", 9, "Cells above this level release.")
	baseline := fs.Int("baseline", 0, "Level a released cell resets to.")
	conn := fs.Int("conn", 8, "Neighborhood: 4 or 8.")
	if exit, err := finish(cfg, fs, args); err != nil || exit {
		return exit, err
	}
	if *sync && *render {
		return false, &ExitError{Code: 2, Message: "cascade: -sync and -render are mutually exclusive"}
	}

	sc := &scenario.Scenario{Name: scenario.KindCascade, Kind: scenario.KindCascade, Input: cfg.Input}
	switch {
	case *sync:
		sc.Query = "sync"
	case *render:
		sc.Query = "render"
	}
	sc.Steps, sc.Limit, sc.Threshold, sc.Baseline, sc.Connectivity = steps, limit, threshold, baseline, conn
	if _, err := sc.CascadeConfig(); err != nil {
		return false, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg.Scenario = sc
	return false, nil
}

func parseLines(cfg *Config, args []string, output io.Writer) (bool, error) {
	fs := newCommandSet(scenario.KindLines, output)
	straight := fs.Bool("straight", false, "Ignore diagonal segments.")
	atLeast := fs.Int("min", 2, "Count cells covered by at least this many segments.")
	render := fs.Bool("render", false, "Print the coverage grid instead of a count.")
	if exit, err := finish(cfg, fs, args); err != nil || exit {
		return exit, err
	}
	sc := &scenario.Scenario{Name: scenario.KindLines, Kind: scenario.KindLines, Input: cfg.Input, Straight: straight}
	setInt(fs, "min", *atLeast, &sc.MinOverlap)
	if *render {
		sc.Query = "render"
	}
	cfg.Scenario = sc
	return false, nil
}

func parseFold(cfg *Config, args []string, output io.Writer) (bool, error) {
	fs := newCommandSet(scenario.KindFold, output)
	first := fs.Bool("first", false, "Count dots after the first fold only.")
	render := fs.Bool("render", false, "Print the sheet after every fold.")
	if exit, err := finish(cfg, fs, args); err != nil || exit {
		return exit, err
	}
	sc := &scenario.Scenario{Name: scenario.KindFold, Kind: scenario.KindFold, Input: cfg.Input, Query: "count"}
	switch {
	case *first && *render:
		return false, &ExitError{Code: 2, Message: "fold: -first and -render are mutually exclusive"}
	case *first:
		sc.Query = "first"
	case *render:
		sc.Query = "render"
	}
	cfg.Scenario = sc
	return false, nil
}

func parseClimb(cfg *Config, args []string, output io.Writer) (bool, error) {
	fs := newCommandSet(scenario.KindClimb, output)
	anyStart := fs.Bool("any", false, "Start from any lowest cell instead of S.")
	if exit, err := finish(cfg, fs, args); err != nil || exit {
		return exit, err
	}
	sc := &scenario.Scenario{Name: scenario.KindClimb, Kind: scenario.KindClimb, Input: cfg.Input}
	if *anyStart {
		sc.Query = "any"
	}
	cfg.Scenario = sc
	return false, nil
}

func parseRun(cfg *Config, args []string, output io.Writer) (bool, error) {
	fs := newCommandSet(CommandRun, output)
	var vars kvList
	fs.Var(&vars, "var", "Scenario variable in key=value form, available as var.key (repeatable).")
	if exit, err := finish(cfg, fs, args); err != nil || exit {
		return exit, err
	}
	if cfg.Input == "" {
		return false, &ExitError{Code: 2, Message: "run: missing scenario file"}
	}
	cfg.ScenarioPath, cfg.Input = cfg.Input, ""
	cfg.Vars = vars.Map()
	return false, nil
}
