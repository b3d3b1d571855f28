package wigner

import "math/big"

// evaluate computes the 3-j symbol via the Racah formula. The request must
// already be validated: every factorial argument below is then a
// non-negative integer within the computed k-range.
//
//	( j1 j2 j3 )
//	( m1 m2 m3 ) = phase * delta(j1,j2,j3) * sqrt(prod) * sum over k of term(k)
//
// with phase = (-1)^(j1-j2-m3) and prod the factorial product
// (j1+m1)!(j1-m1)!(j2+m2)!(j2-m2)!(j3+m3)!(j3-m3)!.
func (r ThreeJ) evaluate() Result {
	tj1, tj2, tj3 := r.J1.twice, r.J2.twice, r.J3.twice
	tm1, tm2, tm3 := r.M1.twice, r.M2.twice, r.M3.twice

	// The k-range is the intersection of the six non-negativity
	// constraints, computed explicitly so no valid term is skipped.
	kmin := max(0, (tj2-tj3-tm1)/2, (tj1-tj3+tm2)/2)
	kmax := min((tj1+tj2-tj3)/2, (tj1-tm1)/2, (tj2+tm2)/2)

	sum := new(big.Rat)
	one := big.NewInt(1)
	for k := kmin; k <= kmax; k++ {
		den := new(big.Int).Set(factorial(k))
		den.Mul(den, factorial((tj1+tj2-tj3)/2-k))
		den.Mul(den, factorial((tj1-tm1)/2-k))
		den.Mul(den, factorial((tj2+tm2)/2-k))
		den.Mul(den, factorial((tj3-tj2+tm1)/2+k))
		den.Mul(den, factorial((tj3-tj1-tm2)/2+k))

		term := new(big.Rat).SetFrac(one, den)
		if k%2 != 0 {
			term.Neg(term)
		}
		sum.Add(sum, term)
	}

	if phaseNegative((tj1 - tj2 - tm3) / 2) {
		sum.Neg(sum)
	}

	root := deltaSquared(tj1, tj2, tj3)
	prod := new(big.Int).Set(factorial((tj1 + tm1) / 2))
	prod.Mul(prod, factorial((tj1-tm1)/2))
	prod.Mul(prod, factorial((tj2+tm2)/2))
	prod.Mul(prod, factorial((tj2-tm2)/2))
	prod.Mul(prod, factorial((tj3+tm3)/2))
	prod.Mul(prod, factorial((tj3-tm3)/2))
	root.Mul(root, new(big.Rat).SetInt(prod))

	return Result{Coeff: sum, Root: root}
}
