package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"flashgrid/internal/ctxlog"
)

// file is the top-level structure of a scenario file.
type file struct {
	Scenarios []*Scenario `hcl:"scenario,block"`
}

// File is a decoded scenario file. Relative inputs resolve against Dir.
type File struct {
	Path      string
	Dir       string
	Scenarios []*Scenario
}

// EvalContext exposes vars to expressions as var.<name>. Values are strings;
// HCL converts them where a number or bool is expected.
func EvalContext(vars map[string]string) *hcl.EvalContext {
	values := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		values[k] = cty.StringVal(v)
	}
	obj := cty.EmptyObjectVal
	if len(values) > 0 {
		obj = cty.ObjectVal(values)
	}
	return &hcl.EvalContext{Variables: map[string]cty.Value{"var": obj}}
}

// Load parses and decodes the scenario file at path.
func Load(ctx context.Context, path string, vars map[string]string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	f, err := Decode(ctx, src, path, vars)
	if err != nil {
		return nil, err
	}
	f.Dir = filepath.Dir(path)
	return f, nil
}

// Decode parses HCL source. filename is used in diagnostics only.
func Decode(ctx context.Context, src []byte, filename string, vars map[string]string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", filename, diags)
	}

	var decoded file
	diags = gohcl.DecodeBody(hclFile.Body, EvalContext(vars), &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario file %s: %w", filename, diags)
	}

	seen := make(map[string]bool, len(decoded.Scenarios))
	for _, sc := range decoded.Scenarios {
		if seen[sc.Name] {
			return nil, fmt.Errorf("scenario file %s: duplicate scenario %q", filename, sc.Name)
		}
		seen[sc.Name] = true
	}
	logger.Debug("Scenario file decoded.", "path", filename, "scenarios", len(decoded.Scenarios), "vars", sortedKeys(vars))
	return &File{Path: filename, Scenarios: decoded.Scenarios}, nil
}

// InputPath resolves sc.Input against the file's directory.
func (f *File) InputPath(sc *Scenario) string {
	if sc.Input == "" || filepath.IsAbs(sc.Input) || f.Dir == "" {
		return sc.Input
	}
	return filepath.Join(f.Dir, sc.Input)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
