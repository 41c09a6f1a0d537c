// Package numfmt formats numbers for spoken output.
package numfmt

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// english is shared by every caller; message.Printer allocates its print
// state per call and is safe for concurrent use.
var english = message.NewPrinter(language.English)

// Integer formats n with English digit grouping, e.g. 1234567 -> "1,234,567".
func Integer(n int64) string {
	return english.Sprintf("%d", n)
}

// Real formats v for reading aloud. Integer-valued reals get digit grouping;
// everything else is printed in plain decimal notation without exponent.
func Real(v float64) string {
	if n, ok := AsInteger(v); ok {
		return Integer(n)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AsInteger returns v as an int64 when it is finite, integer-valued and in
// range.
func AsInteger(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}
