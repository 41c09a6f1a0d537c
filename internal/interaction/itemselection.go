package interaction

import (
	"github.com/abhisek/mathiz-eval/internal/classifier"
	"github.com/abhisek/mathiz-eval/internal/value"
)

// ItemSelectionInputRules returns the rules for checkbox-style answers.
func ItemSelectionInputRules() []classifier.Rule {
	return []classifier.Rule{
		classifier.SingleInput("Equals", "x", value.SetOfStringsPayload, func(answer, x value.SetOfStrings) bool {
			return len(answer) == len(x) && isSubset(answer, x)
		}),
		classifier.SingleInput("ContainsAtLeastOneOf", "x", value.SetOfStringsPayload, intersects),
		classifier.SingleInput("DoesNotContainAtLeastOneOf", "x", value.SetOfStringsPayload, func(answer, x value.SetOfStrings) bool {
			return !intersects(answer, x)
		}),
		classifier.SingleInput("IsProperSubsetOf", "x", value.SetOfStringsPayload, func(answer, x value.SetOfStrings) bool {
			return len(answer) < len(x) && isSubset(answer, x)
		}),
	}
}

func isSubset(a, b value.SetOfStrings) bool {
	for item := range a {
		if !b.Contains(item) {
			return false
		}
	}
	return true
}

func intersects(a, b value.SetOfStrings) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for item := range a {
		if b.Contains(item) {
			return true
		}
	}
	return false
}
