package wigner

import (
	"errors"
	"fmt"
)

// InvalidSymbolError reports a violated triangle or selection rule.
//
// By physical convention a symbol that violates a selection rule has the
// exact value zero; this is NOT a fatal condition. Evaluate returns the zero
// value alongside this error so callers can display 0 while diagnostics and
// tests still see which rule failed.
type InvalidSymbolError struct {
	// Code identifies the violated rule.
	Code RuleCode

	// Message is a human-readable description.
	Message string

	// Triad names the offending triangle triple (for RuleTriangle).
	Triad string
}

// RuleCode categorizes selection-rule violations.
type RuleCode string

const (
	// RuleHalfInteger indicates a value that is not an integer or half-integer.
	RuleHalfInteger RuleCode = "HALF_INTEGER"

	// RuleNegativeJ indicates a negative angular momentum.
	RuleNegativeJ RuleCode = "NEGATIVE_J"

	// RuleMParity indicates j - m is not an integer (j and m differ in kind).
	RuleMParity RuleCode = "M_PARITY"

	// RuleMRange indicates |m| > j.
	RuleMRange RuleCode = "M_RANGE"

	// RuleMSum indicates m1 + m2 + m3 != 0 for a 3-j symbol.
	RuleMSum RuleCode = "M_SUM"

	// RuleTriangle indicates a triad failing the triangle condition,
	// including the integer-perimeter requirement.
	RuleTriangle RuleCode = "TRIANGLE"
)

// Error implements the error interface.
func (e *InvalidSymbolError) Error() string {
	if e.Triad != "" {
		return fmt.Sprintf("%s: %s (triad=%s)", e.Code, e.Message, e.Triad)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidSymbol reports whether err signals a violated selection rule.
// Uses errors.As to handle wrapped errors.
func IsInvalidSymbol(err error) bool {
	var ie *InvalidSymbolError
	return errors.As(err, &ie)
}

// newTriangleError creates an InvalidSymbolError for a failed triangle check.
func newTriangleError(a, b, c QNum, reason string) *InvalidSymbolError {
	return &InvalidSymbolError{
		Code:    RuleTriangle,
		Message: reason,
		Triad:   fmt.Sprintf("{%s %s %s}", a, b, c),
	}
}
