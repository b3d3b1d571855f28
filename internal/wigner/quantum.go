package wigner

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// QNum is an angular-momentum (j) or magnetic (m) quantum number.
//
// Physically these are integers or half-integers, so QNum stores the doubled
// value 2j as a plain integer. After the selection rules hold, every
// factorial argument in the Racah formulas is an exact integer obtained from
// sums and differences of doubled values divided by two.
type QNum struct {
	twice int64
}

// NewQNum converts an exact rational into a QNum.
// Only integers and half-integers (denominator 1 or 2 in lowest terms) are
// representable; anything else is outside the symbol domain and returns an
// *InvalidSymbolError with RuleHalfInteger.
func NewQNum(r *big.Rat) (QNum, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return QNum{}, &InvalidSymbolError{
			Code:    RuleHalfInteger,
			Message: fmt.Sprintf("quantum number %s is too large", r.RatString()),
		}
	}

	num := r.Num().Int64()
	switch r.Denom().Int64() {
	case 1:
		// The doubled value must still fit in an int64.
		if num > math.MaxInt64/2 || num < math.MinInt64/2 {
			return QNum{}, &InvalidSymbolError{
				Code:    RuleHalfInteger,
				Message: fmt.Sprintf("quantum number %s is too large", r.RatString()),
			}
		}
		return QNum{twice: 2 * num}, nil
	case 2:
		// big.Rat keeps lowest terms, so denominator 2 means an exact
		// half-integer.
		return QNum{twice: num}, nil
	default:
		return QNum{}, &InvalidSymbolError{
			Code:    RuleHalfInteger,
			Message: fmt.Sprintf("quantum number %s is not an integer or half-integer", r.RatString()),
		}
	}
}

// FromTwice builds a QNum from a doubled value: FromTwice(3) is 3/2.
func FromTwice(twice int64) QNum {
	return QNum{twice: twice}
}

// Twice returns the doubled value 2j.
func (q QNum) Twice() int64 {
	return q.twice
}

// IsInteger reports whether the quantum number is a whole integer.
func (q QNum) IsInteger() bool {
	return q.twice%2 == 0
}

// Neg returns -q.
func (q QNum) Neg() QNum {
	return QNum{twice: -q.twice}
}

// Rat returns the exact rational value of q.
func (q QNum) Rat() *big.Rat {
	return big.NewRat(q.twice, 2)
}

// Float64 returns the numeric value of q. Exact for every representable
// quantum number of practical magnitude.
func (q QNum) Float64() float64 {
	return float64(q.twice) / 2
}

// String renders q the way it is entered: "2" or "-3/2".
func (q QNum) String() string {
	if q.twice%2 == 0 {
		return strconv.FormatInt(q.twice/2, 10)
	}
	return strconv.FormatInt(q.twice, 10) + "/2"
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// phaseNegative reports whether (-1)^exp is -1.
func phaseNegative(exp int64) bool {
	return abs64(exp)%2 == 1
}
