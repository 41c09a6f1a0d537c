package interaction

import (
	"strings"

	"github.com/abhisek/mathiz-eval/internal/classifier"
	"github.com/abhisek/mathiz-eval/internal/textutil"
	"github.com/abhisek/mathiz-eval/internal/value"
)

// TextInputRules returns the free-text rules. All but FuzzyEquals compare
// whitespace-normalized strings.
func TextInputRules() []classifier.Rule {
	return []classifier.Rule{
		classifier.SingleInput("Equals", "x", value.NormalizedStringPayload, textEquals),
		classifier.SingleInput("CaseSensitiveEquals", "x", value.NormalizedStringPayload, textCaseSensitiveEquals),
		classifier.SingleInput("Contains", "x", value.NormalizedStringPayload, textContains),
		classifier.SingleInput("StartsWith", "x", value.NormalizedStringPayload, textStartsWith),
		classifier.SingleInput("FuzzyEquals", "x", value.NormalizedStringPayload, textFuzzyEquals),
	}
}

func textEquals(answer, x string) bool {
	return strings.EqualFold(textutil.NormalizeWhitespace(answer), textutil.NormalizeWhitespace(x))
}

func textCaseSensitiveEquals(answer, x string) bool {
	return textutil.NormalizeWhitespace(answer) == textutil.NormalizeWhitespace(x)
}

func textContains(answer, x string) bool {
	return strings.Contains(foldText(answer), foldText(x))
}

func textStartsWith(answer, x string) bool {
	return strings.HasPrefix(foldText(answer), foldText(x))
}

// textFuzzyEquals tolerates exactly one typo.
func textFuzzyEquals(answer, x string) bool {
	a, b := strings.ToLower(answer), strings.ToLower(x)
	if a == b {
		return true
	}
	return textutil.EditDistance(a, b) == 1
}

func foldText(s string) string {
	return strings.ToLower(textutil.NormalizeWhitespace(s))
}
