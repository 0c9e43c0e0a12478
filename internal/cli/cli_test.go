package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixture = filepath.Join("..", "params", "testdata", "Parameters.csv")

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	// Flag variables are package globals and outlive a single Execute.
	cfgFile, paramsOverride, logLevelOverride = "", "", ""
	outputOverride, formatsOverride, prefixOverride, manifestOverride = "", nil, "", false

	// An explicit empty config keeps the search away from the working directory.
	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", empty, "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "run", "--params", fixture, "-o", dir, "--format", "txt,json", "--prefix", "suspension_", "--manifest")
	require.NoError(t, err)
	assert.Contains(t, out, "Rover width is valid: true")
	assert.Contains(t, out, "Min upper bolt length:")

	for _, name := range []string{
		"suspension_linkages.txt",
		"suspension_upper_pivot_housing.json",
		"suspension_differential_clevis.txt",
		"suspension_manifest.json",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestRunCommand_RejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "run", "--params", fixture, "-o", t.TempDir(), "--format", "step")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "--params", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "Rover width is valid: true")
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run", "--params", fixture, "-o", dir)
	require.NoError(t, err)

	out, err := execute(t, "show", filepath.Join(dir, "upper_spacer.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "upper_spacer")
	assert.Contains(t, out, "outer_diameter")
}
