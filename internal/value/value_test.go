package value

import (
	"testing"

	"github.com/abhisek/mathiz-eval/internal/mathexpr"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		v    Value
		want Kind
	}{
		{Real(1.5), KindReal},
		{Integer(3), KindInteger},
		{NormalizedString("hi"), KindNormalizedString},
		{NewSetOfStrings("a"), KindSetOfStrings},
		{RatioExpression{1, 2}, KindRatioExpression},
		{MathExpression{Expression: mathexpr.Variable{Name: "x"}}, KindMathExpression},
		{nil, KindUnset},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, KindOf(tc.v))
	}
}

func TestPayloadUnwrap(t *testing.T) {
	f, ok := RealPayload.Unwrap(Real(2.5))
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	_, ok = RealPayload.Unwrap(Integer(2))
	assert.False(t, ok, "integer must not unwrap as real")

	_, ok = IntegerPayload.Unwrap(nil)
	assert.False(t, ok)

	r, ok := RatioExpressionPayload.Unwrap(RatioExpression{2, 4})
	assert.True(t, ok)
	assert.Equal(t, []uint32{2, 4}, r)

	assert.Equal(t, KindSetOfStrings, SetOfStringsPayload.Kind())
}

func TestSetOfStrings(t *testing.T) {
	s := NewSetOfStrings("b", "a", "b")
	assert.Len(t, s, 2)
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.Equal(t, []string{"a", "b"}, s.Sorted())
}

func TestInputsNames(t *testing.T) {
	in := Inputs{"tol": Real(0.1), "x": Real(5)}
	assert.Equal(t, []string{"tol", "x"}, in.Names())
	assert.Empty(t, Inputs{}.Names())
}
