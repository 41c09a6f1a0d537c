package speech

// Spoken fraction names cover denominators 1 to 10 only. Anything larger is
// read as "<a> over <b>" to keep spoken math short.
const (
	maxFractionDenominator = 10
	maxFractionNumerator   = 10
)

var cardinalNames = [...]string{
	"zero", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
}

// Indexed by denominator; index 0 is unused.
var singularOrdinalNames = [...]string{
	"", "whole", "half", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
}

var pluralOrdinalNames = [...]string{
	"", "wholes", "halves", "thirds", "fourths", "fifths",
	"sixths", "sevenths", "eighths", "ninths", "tenths",
}

// fractionName returns e.g. "one half" or "three fourths" for proper (or
// unit) fractions with small terms.
func fractionName(num, den int64) (string, bool) {
	if den < 1 || den > maxFractionDenominator {
		return "", false
	}
	if num < 0 || num > maxFractionNumerator || num > den {
		return "", false
	}
	if num == 1 {
		return cardinalNames[num] + " " + singularOrdinalNames[den], true
	}
	return cardinalNames[num] + " " + pluralOrdinalNames[den], true
}
