package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "[0.4, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, "0.79209\n", out)
}

func TestRunCommandFromStdin(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("[0.4, 0, 1]"))
	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Equal(t, "0.91635\n", out)
}

func TestRunCommandInvalidIndex(t *testing.T) {
	_, err := execute(t, "run", "[0.4, 2, 9]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid fold index")
}

func TestRunCommandMalformedInput(t *testing.T) {
	_, err := execute(t, "run", "not json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse input")

	_, err = execute(t, "run", "[0.4, 2]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected [angle, n, s]")
}

func TestRunCommandNonIntegerParams(t *testing.T) {
	_, err := execute(t, "run", "[0.4, 2.7, 3]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n = 2.7 is not an integer")

	_, err = execute(t, "run", "[0.4, 2, 3.5]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s = 3.5 is not an integer")
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "Correct!\n", out)
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "lambda=1.0000")
	assert.Contains(t, lines[0], "fidelity=0.75101")
	assert.Contains(t, lines[2], "lambda=5.0000")
	assert.Contains(t, lines[3], "lambda=6.3333")
	assert.Contains(t, lines[3], "fidelity=0.32760")
	assert.Contains(t, lines[4], "richardson=0.96532")
	assert.Contains(t, lines[4], "linear=0.78476")
}
