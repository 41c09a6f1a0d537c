package interaction

import (
	"slices"

	"github.com/abhisek/mathiz-eval/internal/classifier"
	"github.com/abhisek/mathiz-eval/internal/value"
)

// RatioExpressionInputRules returns the rules for ratio answers like 2:3.
func RatioExpressionInputRules() []classifier.Rule {
	return []classifier.Rule{
		classifier.SingleInput("Equals", "x", value.RatioExpressionPayload, func(answer, x []uint32) bool {
			return slices.Equal(answer, x)
		}),
		classifier.SingleInput("IsEquivalent", "x", value.RatioExpressionPayload, func(answer, x []uint32) bool {
			return slices.Equal(SimplestForm(answer), SimplestForm(x))
		}),
		classifier.MultiTypeSingleInput("HasNumberOfTermsEqualTo", "y",
			value.RatioExpressionPayload, value.IntegerPayload,
			func(answer []uint32, y int64) bool {
				return int64(len(answer)) == y
			}),
		classifier.MultiTypeDoubleInput("HasSpecificTermEqualTo", "x", "y",
			value.RatioExpressionPayload, value.IntegerPayload,
			func(answer []uint32, x, y int64) bool {
				if x < 1 || x > int64(len(answer)) {
					return false
				}
				return int64(answer[x-1]) == y
			}),
	}
}

// SimplestForm divides every component by their common GCD. Ratios with a
// zero component are returned unchanged.
func SimplestForm(ratio []uint32) []uint32 {
	if len(ratio) == 0 || slices.Contains(ratio, 0) {
		return ratio
	}
	g := ratio[0]
	for _, c := range ratio[1:] {
		g = gcd(g, c)
	}
	out := make([]uint32, len(ratio))
	for i, c := range ratio {
		out[i] = c / g
	}
	return out
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
