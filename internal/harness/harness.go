package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qphys/wigner/internal/wigner"
)

// RunCases loads a case file and runs every case as a subtest.
//
// Value cases assert the evaluated symbol within Tolerance. Rule cases
// assert that evaluation reports exactly the named rule code and a zero
// value (the physical convention: an invalid symbol IS zero).
func RunCases(t *testing.T, path string) {
	t.Helper()

	cases, err := LoadCases(path)
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			req, err := c.Request()
			require.NoError(t, err)

			value, err := wigner.Evaluate(req)

			if c.Rule != "" {
				var invalid *wigner.InvalidSymbolError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, c.Rule, string(invalid.Code))
				assert.Zero(t, value)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, c.Value, value, Tolerance)
		})
	}
}
