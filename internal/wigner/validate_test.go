package wigner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeJ builds a request from doubled quantum numbers: threeJ(2, ...) has
// j1 = 1, threeJ(1, ...) has j1 = 1/2.
func threeJ(tj1, tj2, tj3, tm1, tm2, tm3 int64) ThreeJ {
	return ThreeJ{
		J1: FromTwice(tj1), J2: FromTwice(tj2), J3: FromTwice(tj3),
		M1: FromTwice(tm1), M2: FromTwice(tm2), M3: FromTwice(tm3),
	}
}

func sixJ(tj1, tj2, tj3, tj4, tj5, tj6 int64) SixJ {
	return SixJ{
		J1: FromTwice(tj1), J2: FromTwice(tj2), J3: FromTwice(tj3),
		J4: FromTwice(tj4), J5: FromTwice(tj5), J6: FromTwice(tj6),
	}
}

func ruleOf(t *testing.T, err error) RuleCode {
	t.Helper()
	var ie *InvalidSymbolError
	require.ErrorAs(t, err, &ie)
	return ie.Code
}

func TestValidateThreeJAccepts(t *testing.T) {
	assert.NoError(t, threeJ(2, 2, 2, 2, -2, 0).Validate())
	assert.NoError(t, threeJ(1, 1, 0, 1, -1, 0).Validate())
	assert.NoError(t, threeJ(3, 2, 1, 1, 0, -1).Validate())
}

func TestValidateThreeJNegativeJ(t *testing.T) {
	err := threeJ(-2, 2, 2, 0, 0, 0).Validate()
	assert.Equal(t, RuleNegativeJ, ruleOf(t, err))
}

func TestValidateThreeJParity(t *testing.T) {
	// j1 = 1 with m1 = 1/2: j - m is not an integer.
	err := threeJ(2, 2, 2, 1, -1, 0).Validate()
	assert.Equal(t, RuleMParity, ruleOf(t, err))
}

func TestValidateThreeJMRange(t *testing.T) {
	err := threeJ(2, 2, 2, 4, -4, 0).Validate()
	assert.Equal(t, RuleMRange, ruleOf(t, err))
}

func TestValidateThreeJMSum(t *testing.T) {
	err := threeJ(2, 2, 2, 2, 0, 0).Validate()
	assert.Equal(t, RuleMSum, ruleOf(t, err))
}

func TestValidateThreeJTriangle(t *testing.T) {
	// j3 = 3 exceeds j1 + j2 = 2.
	err := threeJ(2, 2, 6, 0, 0, 0).Validate()
	assert.Equal(t, RuleTriangle, ruleOf(t, err))
}

func TestValidateSixJPerimeterParity(t *testing.T) {
	// {1, 1, 3/2} satisfies the inequality but has a half-integer
	// perimeter, so the triad still cannot couple. Only reachable through
	// 6-j symbols: for 3-j the m-parity and m-sum rules already exclude
	// every odd-perimeter triad.
	err := sixJ(2, 2, 3, 2, 2, 2).Validate()
	assert.Equal(t, RuleTriangle, ruleOf(t, err))
}

func TestValidateSixJAccepts(t *testing.T) {
	assert.NoError(t, sixJ(2, 2, 2, 2, 2, 2).Validate())
	assert.NoError(t, sixJ(1, 1, 2, 1, 1, 2).Validate())
	assert.NoError(t, sixJ(1, 1, 0, 1, 1, 0).Validate())
}

func TestValidateSixJNegativeJ(t *testing.T) {
	err := sixJ(2, 2, 2, 2, 2, -2).Validate()
	assert.Equal(t, RuleNegativeJ, ruleOf(t, err))
}

func TestValidateSixJTriadRejected(t *testing.T) {
	// Triad {j4, j5, j3} = {1, 1, 3} fails the inequality while
	// {j1, j2, j3} passes.
	err := sixJ(4, 2, 6, 2, 2, 4).Validate()
	assert.Equal(t, RuleTriangle, ruleOf(t, err))

	var ie *InvalidSymbolError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "{1 1 3}", ie.Triad)
}

func TestIsInvalidSymbol(t *testing.T) {
	err := threeJ(2, 2, 6, 0, 0, 0).Validate()
	assert.True(t, IsInvalidSymbol(err))
	assert.False(t, IsInvalidSymbol(nil))
}
