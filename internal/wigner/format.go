package wigner

import "strconv"

// DefaultPrecision is the number of fractional digits in rendered values,
// matching the reference display behavior.
const DefaultPrecision = 8

// FormatValue renders a symbol value at fixed precision. A precision of
// zero or less falls back to DefaultPrecision. Negative zero is normalized
// so invalid symbols always render as plain zero.
func FormatValue(v float64, precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	if v == 0 {
		v = 0 // collapse -0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
