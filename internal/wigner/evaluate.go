package wigner

import "fmt"

// Evaluate computes the floating value of a 3-j or 6-j request. It is the
// sole entry point for callers.
//
// A request violating a selection rule returns (0, *InvalidSymbolError):
// the zero is the symbol's exact physical value and the typed error names
// the violated rule for diagnostics. No summation runs in that case.
func Evaluate(req Request) (float64, error) {
	res, err := EvaluateExact(req)
	if err != nil {
		return 0, err
	}
	return res.Float64(), nil
}

// EvaluateExact computes the exact coeff × √root form of the symbol.
// Same invalid-symbol convention as Evaluate.
func EvaluateExact(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return zeroResult(), err
	}

	switch r := req.(type) {
	case ThreeJ:
		return r.evaluate(), nil
	case SixJ:
		return r.evaluate(), nil
	default:
		panic(fmt.Sprintf("wigner: unknown request type %T", req))
	}
}
