// Package wigner evaluates Wigner 3-j and 6-j angular-momentum coupling
// symbols via their Racah closed-form summations.
//
// ARCHITECTURE:
//
// Exact Rational Core:
// All intermediate arithmetic (factorials, triangle coefficients, the
// alternating Racah sums) is carried out in arbitrary-precision rationals
// (math/big). Each closed form naturally produces
//
//	coeff × √root
//
// with coeff and root exact rationals; the single square root is taken only
// at the final conversion to float64. No fixed-width integer ever holds a
// factorial.
//
// Validate-Then-Evaluate:
// Requests are validated against the selection rules (half-integer domain,
// |m| ≤ j, Σm = 0, triangle conditions) before any summation runs. A
// violated rule yields an exact zero value together with a typed
// *InvalidSymbolError naming the rule. By physical convention an invalid
// symbol IS zero, so callers display 0 and may ignore the error.
//
// Determinism:
// Evaluation is a pure function. The same request always produces a
// bit-identical result. The only process-local state is the factorial memo
// table, which is guarded for concurrent first-populate.
//
// Quantum numbers are stored as doubled integers (2j), so every factorial
// argument becomes a plain non-negative integer once the selection rules
// hold.
package wigner
