package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares output against a golden file under
// testdata/golden/{name}.golden, relative to the calling test's package.
//
// To regenerate golden files, run:
//
//	go test ./... -update
func AssertGolden(t *testing.T, name string, output []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, output)
}
