// Package textutil holds the string helpers shared by the text rules.
package textutil

import (
	"strings"

	"github.com/agext/levenshtein"
)

// NormalizeWhitespace collapses every run of whitespace to a single space
// and trims both ends. It is idempotent.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EditDistance returns the Levenshtein distance between a and b, counting
// insertions, deletions and substitutions of runes at cost 1 each.
func EditDistance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}
