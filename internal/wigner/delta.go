package wigner

import "math/big"

// deltaSquared returns the squared triangle coefficient
//
//	Δ²(a,b,c) = (a+b-c)! (a-b+c)! (-a+b+c)! / (a+b+c+1)!
//
// Arguments are doubled quantum numbers; the caller guarantees the triangle
// condition holds, so every factorial argument is a non-negative integer.
// The square root is deferred to the final Result conversion.
func deltaSquared(ta, tb, tc int64) *big.Rat {
	num := new(big.Int).Set(factorial((ta + tb - tc) / 2))
	num.Mul(num, factorial((ta-tb+tc)/2))
	num.Mul(num, factorial((-ta+tb+tc)/2))
	den := factorial((ta+tb+tc)/2 + 1)
	return new(big.Rat).SetFrac(num, den)
}
