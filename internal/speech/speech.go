// Package speech reads parsed math expressions aloud as English prose for
// screen readers.
//
// Rendering fails closed: if any node in the tree is unset, no partial
// sentence is produced and the caller gets ok == false.
package speech

import (
	"golang.org/x/text/language"

	"github.com/abhisek/mathiz-eval/internal/mathexpr"
)

var englishBase, _ = language.English.Base()

// Supported reports whether expressions can be rendered in lang. Only
// English is supported. Tags without an explicit language, such as "und"
// or "und-US", are not.
func Supported(lang language.Tag) bool {
	base, conf := lang.Base()
	return conf == language.Exact && base == englishBase
}

// RenderExpression returns the spoken form of e. With fractions set,
// division is read as a fraction ("one half", "the fraction with numerator
// x and denominator 2") rather than "divided by".
func RenderExpression(e mathexpr.Expression, lang language.Tag, fractions bool) (string, bool) {
	if !Supported(lang) {
		return "", false
	}
	r := renderer{fractions: fractions}
	return r.expression(e)
}

// RenderEquation returns the spoken form of eq, "<left> equals <right>".
func RenderEquation(eq mathexpr.Equation, lang language.Tag, fractions bool) (string, bool) {
	if !Supported(lang) {
		return "", false
	}
	r := renderer{fractions: fractions}
	left, ok := r.expression(eq.Left)
	if !ok {
		return "", false
	}
	right, ok := r.expression(eq.Right)
	if !ok {
		return "", false
	}
	return left + " equals " + right, true
}
