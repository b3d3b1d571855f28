package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestInteractiveComputesThreeJ(t *testing.T) {
	out, err := executeWithInput(t, "3\n1\n1\n1\n1\n-1\n0\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Value: 0.40824829")
}

func TestInteractiveComputesSixJ(t *testing.T) {
	out, err := executeWithInput(t, "6\n1\n1\n1\n1\n1\n1\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Value: 0.16666667")
}

func TestInteractiveRepromptsOnBadFraction(t *testing.T) {
	out, err := executeWithInput(t, "3\n1/0\n1\n1\n1\n1\n-1\n0\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid input. Please enter a valid fraction (e.g., 1/2) or integer.")
	assert.Contains(t, out, "Value: 0.40824829")
}

func TestInteractiveRepromptsOnThirds(t *testing.T) {
	out, err := executeWithInput(t, "3\n1/3\n1\n1\n1\n1\n-1\n0\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Quantum numbers must be integers or half-integers.")
	assert.Contains(t, out, "Value: 0.40824829")
}

func TestInteractiveInputClosedEarly(t *testing.T) {
	_, err := executeWithInput(t, "3\n1\n", "interactive")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "input closed")
}

func TestInteractiveNormalizesAndRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	// 2/4 normalizes to 1/2 in both the result block and the history.
	out, err := executeWithInput(t, "3\n2/4\n1/2\n0\n1/2\n-1/2\n0\n", "--db", dbPath, "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Wigner 3-j symbol { 1/2 1/2 0 }")

	histOut, err := executeCommand(t, "--db", dbPath, "history")
	require.NoError(t, err)
	assert.Contains(t, histOut, "1/2 1/2 0 1/2 -1/2 0")
	assert.Contains(t, histOut, "0.70710678")
}
