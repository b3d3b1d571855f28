package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRejectsInvalidFormat(t *testing.T) {
	_, err := executeCommand(t, "--format", "xml", "3j", "1", "1", "1", "1", "-1", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootRejectsInvalidPrecision(t *testing.T) {
	_, err := executeCommand(t, "--precision", "0", "3j", "1", "1", "1", "1", "-1", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid precision")

	_, err = executeCommand(t, "--precision", "40", "3j", "1", "1", "1", "1", "-1", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid precision")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}
