package wigner

import (
	"math"
	"math/big"
)

// Result is an exact symbol value in the form coeff × √root, the shape the
// Racah closed forms naturally produce. Both parts are arbitrary-precision
// rationals; root is always non-negative. The sign of the symbol lives in
// coeff.
type Result struct {
	Coeff *big.Rat
	Root  *big.Rat
}

// zeroResult is the exact value of an invalid symbol.
func zeroResult() Result {
	return Result{Coeff: new(big.Rat), Root: new(big.Rat)}
}

// IsZero reports whether the result is exactly zero.
func (r Result) IsZero() bool {
	return r.Coeff.Sign() == 0 || r.Root.Sign() == 0
}

// Float64 converts the exact result to a floating value. This is the single
// point where the square root is taken; everything upstream is exact.
//
// Coeff and root can each overflow float64 on their own at large j even
// when the symbol itself is tiny, so the coefficient is squared into the
// radicand and the combined rational coeff²·root is converted once.
func (r Result) Float64() float64 {
	if r.IsZero() {
		return 0
	}
	square := new(big.Rat).Mul(r.Coeff, r.Coeff)
	square.Mul(square, r.Root)
	f, _ := square.Float64()
	v := math.Sqrt(f)
	if r.Coeff.Sign() < 0 {
		return -v
	}
	return v
}
