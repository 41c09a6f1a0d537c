// Package value defines the typed answer and input values that rules
// operate on. A Value is exactly one of Real, Integer, NormalizedString,
// SetOfStrings, RatioExpression or MathExpression.
package value

import (
	"sort"

	"github.com/abhisek/mathiz-eval/internal/mathexpr"
)

// Kind names the variant held by a Value.
type Kind int

const (
	KindUnset Kind = iota
	KindReal
	KindInteger
	KindNormalizedString
	KindSetOfStrings
	KindRatioExpression
	KindMathExpression
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "Real"
	case KindInteger:
		return "Integer"
	case KindNormalizedString:
		return "NormalizedString"
	case KindSetOfStrings:
		return "SetOfStrings"
	case KindRatioExpression:
		return "RatioExpression"
	case KindMathExpression:
		return "MathExpression"
	default:
		return "Unset"
	}
}

// Value is a learner answer or an author-supplied rule input.
type Value interface {
	Kind() Kind
	isValue()
}

// Real is a floating point number.
type Real float64

// Integer is a signed whole number.
type Integer int64

// NormalizedString is free text. Rules normalize whitespace before comparing.
type NormalizedString string

// SetOfStrings is an unordered set of item identifiers.
type SetOfStrings map[string]struct{}

// RatioExpression is an ordered list of ratio components, e.g. 1:2:3.
type RatioExpression []uint32

// MathExpression wraps a parsed expression tree.
type MathExpression struct {
	Expression mathexpr.Expression
}

func (Real) Kind() Kind             { return KindReal }
func (Integer) Kind() Kind          { return KindInteger }
func (NormalizedString) Kind() Kind { return KindNormalizedString }
func (SetOfStrings) Kind() Kind     { return KindSetOfStrings }
func (RatioExpression) Kind() Kind  { return KindRatioExpression }
func (MathExpression) Kind() Kind   { return KindMathExpression }

func (Real) isValue()             {}
func (Integer) isValue()          {}
func (NormalizedString) isValue() {}
func (SetOfStrings) isValue()     {}
func (RatioExpression) isValue()  {}
func (MathExpression) isValue()   {}

// KindOf returns the kind of v, or KindUnset for a nil Value.
func KindOf(v Value) Kind {
	if v == nil {
		return KindUnset
	}
	return v.Kind()
}

// NewSetOfStrings builds a set from items. Duplicates collapse.
func NewSetOfStrings(items ...string) SetOfStrings {
	s := make(SetOfStrings, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Contains reports whether item is in the set.
func (s SetOfStrings) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the set members in lexical order.
func (s SetOfStrings) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Inputs maps rule parameter names (e.g. "x", "tol") to their values.
type Inputs map[string]Value

// Names returns the parameter names present, sorted.
func (in Inputs) Names() []string {
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
