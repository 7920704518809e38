package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const octopuses = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, strings.NewReader(""), []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_CascadeFromStdin(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, strings.NewReader(octopuses), []string{"cascade", "-steps", "100"})
	require.NoError(t, err)
	require.Equal(t, "1656\n", out.String())

	out.Reset()
	err = run(out, strings.NewReader(octopuses), []string{"cascade", "-sync"})
	require.NoError(t, err)
	require.Equal(t, "195\n", out.String())
}

func TestRun_CascadeRenderFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "small.txt")
	require.NoError(t, os.WriteFile(path, []byte("11111\n19991\n19191\n19991\n11111\n"), 0o600))

	out := &bytes.Buffer{}
	err := run(out, strings.NewReader(""), []string{"cascade", "-render", "-steps", "1", path})
	require.NoError(t, err)
	require.Equal(t, "34543\n40004\n50005\n40004\n34543\n", out.String())
}

func TestRun_Scenarios(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "octopus.txt"), []byte(octopuses), 0o600))
	hcl := `
scenario "octopus" {
  kind   = "cascade"
  input  = "octopus.txt"
  steps  = var.steps
  expect = 204
}
`
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o600))

	out := &bytes.Buffer{}
	err := run(out, strings.NewReader(""), []string{"run", "-var", "steps=10", path})
	require.NoError(t, err)
	require.Equal(t, "octopus: 204\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, strings.NewReader("12\n3\n"), []string{"cascade"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "same length")

	err = run(&bytes.Buffer{}, strings.NewReader(""), []string{"climb", filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
}
