package wigner

import "fmt"

// Validate enforces the 3-j selection rules:
//   - each j is non-negative
//   - each (j, m) pair: j - m is an integer and |m| <= j
//   - m1 + m2 + m3 = 0
//   - {j1, j2, j3} satisfy the triangle condition
func (r ThreeJ) Validate() error {
	pairs := []struct {
		name string
		j, m QNum
	}{
		{"1", r.J1, r.M1},
		{"2", r.J2, r.M2},
		{"3", r.J3, r.M3},
	}
	for _, p := range pairs {
		if err := checkPair(p.name, p.j, p.m); err != nil {
			return err
		}
	}

	if r.M1.twice+r.M2.twice+r.M3.twice != 0 {
		return &InvalidSymbolError{
			Code:    RuleMSum,
			Message: fmt.Sprintf("m1 + m2 + m3 = %s, want 0", FromTwice(r.M1.twice+r.M2.twice+r.M3.twice)),
		}
	}

	return checkTriangle(r.J1, r.J2, r.J3)
}

// Validate enforces the 6-j selection rules: every j is non-negative and the
// four triads {j1,j2,j3}, {j1,j5,j6}, {j4,j2,j6}, {j4,j5,j3} each satisfy
// the triangle condition.
func (r SixJ) Validate() error {
	js := []struct {
		name string
		j    QNum
	}{
		{"j1", r.J1}, {"j2", r.J2}, {"j3", r.J3},
		{"j4", r.J4}, {"j5", r.J5}, {"j6", r.J6},
	}
	for _, e := range js {
		if e.j.twice < 0 {
			return &InvalidSymbolError{
				Code:    RuleNegativeJ,
				Message: fmt.Sprintf("%s = %s must be non-negative", e.name, e.j),
			}
		}
	}

	triads := [][3]QNum{
		{r.J1, r.J2, r.J3},
		{r.J1, r.J5, r.J6},
		{r.J4, r.J2, r.J6},
		{r.J4, r.J5, r.J3},
	}
	for _, t := range triads {
		if err := checkTriangle(t[0], t[1], t[2]); err != nil {
			return err
		}
	}
	return nil
}

// checkPair validates one (j, m) column: non-negative j, matching
// integer/half-integer kind, and |m| <= j.
func checkPair(name string, j, m QNum) error {
	if j.twice < 0 {
		return &InvalidSymbolError{
			Code:    RuleNegativeJ,
			Message: fmt.Sprintf("j%s = %s must be non-negative", name, j),
		}
	}
	if (j.twice-m.twice)%2 != 0 {
		return &InvalidSymbolError{
			Code:    RuleMParity,
			Message: fmt.Sprintf("j%s = %s and m%s = %s must both be integers or both half-integers", name, j, name, m),
		}
	}
	if abs64(m.twice) > j.twice {
		return &InvalidSymbolError{
			Code:    RuleMRange,
			Message: fmt.Sprintf("|m%s| = %s exceeds j%s = %s", name, FromTwice(abs64(m.twice)), name, j),
		}
	}
	return nil
}

// checkTriangle validates the triangle condition on (a, b, c):
// |a-b| <= c <= a+b, with an integer perimeter a+b+c.
func checkTriangle(a, b, c QNum) error {
	perimeter := a.twice + b.twice + c.twice
	if perimeter%2 != 0 {
		return newTriangleError(a, b, c, "perimeter is not an integer")
	}
	if c.twice < abs64(a.twice-b.twice) || c.twice > a.twice+b.twice {
		return newTriangleError(a, b, c, "triangle inequality violated")
	}
	return nil
}
