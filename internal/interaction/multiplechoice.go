package interaction

import (
	"github.com/abhisek/mathiz-eval/internal/classifier"
	"github.com/abhisek/mathiz-eval/internal/value"
)

// MultipleChoiceInputRules returns the rules for a single picked option,
// identified by its index.
func MultipleChoiceInputRules() []classifier.Rule {
	return []classifier.Rule{
		classifier.SingleInput("Equals", "x", value.IntegerPayload, func(answer, x int64) bool {
			return answer == x
		}),
	}
}
