package value

import "github.com/abhisek/mathiz-eval/internal/mathexpr"

// Payload unwraps one Value variant into its Go representation. Rules
// declare the payloads they accept; the classifier uses them both to check
// kinds and to hand matchers plain Go values.
type Payload[T any] struct {
	kind   Kind
	unwrap func(Value) (T, bool)
}

// Kind returns the variant this payload unwraps.
func (p Payload[T]) Kind() Kind { return p.kind }

// Unwrap returns the payload of v, or false if v holds another variant.
func (p Payload[T]) Unwrap(v Value) (T, bool) {
	return p.unwrap(v)
}

var (
	RealPayload = Payload[float64]{
		kind: KindReal,
		unwrap: func(v Value) (float64, bool) {
			r, ok := v.(Real)
			return float64(r), ok
		},
	}

	IntegerPayload = Payload[int64]{
		kind: KindInteger,
		unwrap: func(v Value) (int64, bool) {
			i, ok := v.(Integer)
			return int64(i), ok
		},
	}

	NormalizedStringPayload = Payload[string]{
		kind: KindNormalizedString,
		unwrap: func(v Value) (string, bool) {
			s, ok := v.(NormalizedString)
			return string(s), ok
		},
	}

	SetOfStringsPayload = Payload[SetOfStrings]{
		kind: KindSetOfStrings,
		unwrap: func(v Value) (SetOfStrings, bool) {
			s, ok := v.(SetOfStrings)
			return s, ok
		},
	}

	RatioExpressionPayload = Payload[[]uint32]{
		kind: KindRatioExpression,
		unwrap: func(v Value) ([]uint32, bool) {
			r, ok := v.(RatioExpression)
			return []uint32(r), ok
		},
	}

	MathExpressionPayload = Payload[mathexpr.Expression]{
		kind: KindMathExpression,
		unwrap: func(v Value) (mathexpr.Expression, bool) {
			m, ok := v.(MathExpression)
			return m.Expression, ok
		},
	}
)
