package wigner

import "math/big"

// evaluate computes the 6-j symbol via the Racah formula. The request must
// already be validated.
//
//	{ j1 j2 j3 }
//	{ j4 j5 j6 } = Δ(j1,j2,j3) Δ(j1,j5,j6) Δ(j4,j2,j6) Δ(j4,j5,j3) × Σ term(k)
//
// where term(k) = (-1)^k (k+1)! divided by the product of (k - t_i)! over
// the four triad perimeters t_i and (s_i - k)! over the three crossed sums
// s_i. The k-range runs from the largest triad perimeter to the smallest
// crossed sum.
func (r SixJ) evaluate() Result {
	tj1, tj2, tj3 := r.J1.twice, r.J2.twice, r.J3.twice
	tj4, tj5, tj6 := r.J4.twice, r.J5.twice, r.J6.twice

	t1 := (tj1 + tj2 + tj3) / 2
	t2 := (tj1 + tj5 + tj6) / 2
	t3 := (tj4 + tj2 + tj6) / 2
	t4 := (tj4 + tj5 + tj3) / 2

	s1 := (tj1 + tj2 + tj4 + tj5) / 2
	s2 := (tj2 + tj3 + tj5 + tj6) / 2
	s3 := (tj3 + tj1 + tj6 + tj4) / 2

	kmin := max(t1, t2, t3, t4)
	kmax := min(s1, s2, s3)

	sum := new(big.Rat)
	for k := kmin; k <= kmax; k++ {
		den := new(big.Int).Set(factorial(k - t1))
		den.Mul(den, factorial(k-t2))
		den.Mul(den, factorial(k-t3))
		den.Mul(den, factorial(k-t4))
		den.Mul(den, factorial(s1-k))
		den.Mul(den, factorial(s2-k))
		den.Mul(den, factorial(s3-k))

		term := new(big.Rat).SetFrac(factorial(k+1), den)
		if k%2 != 0 {
			term.Neg(term)
		}
		sum.Add(sum, term)
	}

	root := deltaSquared(tj1, tj2, tj3)
	root.Mul(root, deltaSquared(tj1, tj5, tj6))
	root.Mul(root, deltaSquared(tj4, tj2, tj6))
	root.Mul(root, deltaSquared(tj4, tj5, tj3))

	return Result{Coeff: sum, Root: root}
}
