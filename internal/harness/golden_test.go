package harness

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qphys/wigner/internal/cli"
)

// runInteractiveSession drives the interactive command with a scripted
// stdin and captures its full output.
func runInteractiveSession(t *testing.T, input string) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := cli.NewRootCommand()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"interactive"})

	require.NoError(t, cmd.Execute())
	return buf.Bytes()
}

func TestInteractiveThreeJSession(t *testing.T) {
	out := runInteractiveSession(t, "3\n1\n1\n1\n1\n-1\n0\n")
	AssertGolden(t, "interactive_3j_session", out)
}

func TestInteractiveSixJSessionWithRetries(t *testing.T) {
	// A bad selection and a bad quantum number both re-prompt.
	out := runInteractiveSession(t, "9\n6\nx\n1\n1\n1\n1\n1\n1\n")
	AssertGolden(t, "interactive_6j_session_retries", out)
}

func TestInteractiveInvalidSymbolPrintsZero(t *testing.T) {
	// j3 = 3 fails the triangle rule; the session still reports a plain 0.
	out := runInteractiveSession(t, "3\n1\n1\n3\n0\n0\n0\n")
	AssertGolden(t, "interactive_3j_invalid_session", out)
}
