package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ParseError describes a malformed quantum number argument.
// Parse errors never reach the numeric core; the interactive prompt
// re-prompts and the one-shot commands exit with a command error.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid quantum number %q: %s", e.Input, e.Reason)
}

// ParseQuantumNumber parses "n" or "n/d" into an exact rational.
// Accepts exactly the forms the reference calculator accepts: an integer or
// an integer fraction with a non-zero denominator. big.Rat's own parser is
// deliberately not used here since it also admits decimals and exponents.
func ParseQuantumNumber(text string) (*big.Rat, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, &ParseError{Input: text, Reason: "empty input"}
	}

	numText, denText, isFraction := strings.Cut(s, "/")

	num, err := strconv.ParseInt(numText, 10, 64)
	if err != nil {
		return nil, &ParseError{Input: text, Reason: "numerator is not an integer"}
	}
	if !isFraction {
		return big.NewRat(num, 1), nil
	}

	den, err := strconv.ParseInt(denText, 10, 64)
	if err != nil {
		return nil, &ParseError{Input: text, Reason: "denominator is not an integer"}
	}
	if den == 0 {
		return nil, &ParseError{Input: text, Reason: "zero denominator"}
	}
	return big.NewRat(num, den), nil
}
