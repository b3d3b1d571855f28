package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRequiresDatabase(t *testing.T) {
	_, err := executeCommand(t, "history")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestHistoryEmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	out, err := executeCommand(t, "--db", dbPath, "history")
	require.NoError(t, err)
	assert.Equal(t, "no evaluations recorded\n", out)
}

func TestEvaluationsAreRecorded(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	_, err := executeCommand(t, "--db", dbPath, "3j", "1", "1", "1", "1", "-1", "0")
	require.NoError(t, err)
	_, err = executeCommand(t, "--db", dbPath, "6j", "1", "1", "1", "1", "1", "1")
	require.NoError(t, err)

	out, err := executeCommand(t, "--db", dbPath, "history")
	require.NoError(t, err)

	// Newest first.
	assert.Regexp(t, `(?s)6j.*1 1 1 1 1 1.*0\.16666667.*3j.*1 1 1 1 -1 0.*0\.40824829`, out)
}

func TestHistoryLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	for i := 0; i < 3; i++ {
		_, err := executeCommand(t, "--db", dbPath, "3j", "1", "1", "0", "1", "-1", "0")
		require.NoError(t, err)
	}

	out, err := executeCommand(t, "--db", dbPath, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, len(splitLines(out)))
}

func TestHistoryJSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	_, err := executeCommand(t, "--db", dbPath, "3j", "1", "1", "2", "0", "0", "0")
	require.NoError(t, err)

	out, err := executeCommand(t, "--db", dbPath, "--format", "json", "history")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	evals, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, evals, 1)

	first, ok := evals[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "3j", first["kind"])
	assert.NotEmpty(t, first["id"])
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
