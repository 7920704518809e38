package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"flashgrid/internal/ctxlog"
	"flashgrid/pkg/grid"
)

// ErrMissingInput reports a scenario without an input path.
var ErrMissingInput = errors.New("scenario: missing input")

// ReadInput reads the lines of the file at path.
func ReadInput(path string) ([]string, error) {
	if path == "" {
		return nil, ErrMissingInput
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return grid.ReadLines(fh)
}

// Run executes every scenario in f in order and writes "name: result" to out.
// Rendered results follow their name on separate lines. It stops at the first failure.
func Run(ctx context.Context, f *File, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	for _, sc := range f.Scenarios {
		input, err := ReadInput(f.InputPath(sc))
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		res, err := Execute(ctx, sc, input)
		if err != nil {
			return err
		}
		if res.Rendered {
			fmt.Fprintf(out, "%s:\n%s", sc.Name, res.Text)
		} else {
			fmt.Fprintf(out, "%s: %d\n", sc.Name, res.Value)
		}
		logger.Info("Scenario solved.", "scenario", sc.Name, "kind", sc.Kind)
	}
	return nil
}
