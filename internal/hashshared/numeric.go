package hashshared

import "regexp"

var numericRe = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// IsNumeric reports whether v is a decimal integer or floating-point
// literal, optionally signed. NaN, infinities, hex and digit separators are
// not numeric.
func IsNumeric(v string) bool {
	return numericRe.MatchString(v)
}
