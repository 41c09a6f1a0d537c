package interaction

import (
	"math"

	"github.com/abhisek/mathiz-eval/internal/classifier"
	"github.com/abhisek/mathiz-eval/internal/value"
)

// Epsilon is the absolute tolerance NumericInput.Equals allows for rounding.
const Epsilon = 1e-5

// NumericInputRules returns the rules for real-valued answers.
func NumericInputRules() []classifier.Rule {
	return []classifier.Rule{
		classifier.SingleInput("Equals", "x", value.RealPayload, func(answer, x float64) bool {
			return approximatelyEqual(answer, x)
		}),
		classifier.SingleInput("IsGreaterThan", "x", value.RealPayload, func(answer, x float64) bool {
			return answer > x
		}),
		classifier.SingleInput("IsGreaterThanOrEqualTo", "x", value.RealPayload, func(answer, x float64) bool {
			return answer >= x
		}),
		classifier.SingleInput("IsLessThan", "x", value.RealPayload, func(answer, x float64) bool {
			return answer < x
		}),
		classifier.SingleInput("IsLessThanOrEqualTo", "x", value.RealPayload, func(answer, x float64) bool {
			return answer <= x
		}),
		// An inverted range (a > b) is empty and never matches.
		classifier.DoubleInput("IsInclusivelyBetween", "a", "b", value.RealPayload, func(answer, a, b float64) bool {
			return a <= answer && answer <= b
		}),
		classifier.DoubleInput("IsWithinTolerance", "x", "tol", value.RealPayload, func(answer, x, tol float64) bool {
			return x-tol <= answer && answer <= x+tol
		}),
	}
}

func approximatelyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
