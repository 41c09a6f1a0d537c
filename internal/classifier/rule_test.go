package classifier

import (
	"errors"
	"testing"

	"github.com/abhisek/mathiz-eval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realEquals() Rule {
	return SingleInput("Equals", "x", value.RealPayload, func(answer, x float64) bool {
		return answer == x
	})
}

func TestSingleInput_Matches(t *testing.T) {
	rule := realEquals()
	assert.Equal(t, "Equals", rule.Name())

	ok, err := rule.Matches(value.Real(5), value.Inputs{"x": value.Real(5)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rule.Matches(value.Real(4), value.Inputs{"x": value.Real(5)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSingleInput_MissingInput(t *testing.T) {
	_, err := realEquals().Matches(value.Real(5), value.Inputs{"y": value.Real(5)})

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "x", missing.Input)
	assert.Equal(t, []string{"y"}, missing.Present)
	assert.ErrorIs(t, err, ErrMalformedRequest)
	assert.Contains(t, err.Error(), `missing input "x"`)
}

func TestSingleInput_MissingCheckedBeforeKind(t *testing.T) {
	// The answer kind is also wrong, but the missing input is reported first.
	_, err := realEquals().Matches(value.Integer(5), value.Inputs{})

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Empty(t, missing.Present)
}

func TestSingleInput_AnswerKindMismatch(t *testing.T) {
	_, err := realEquals().Matches(value.NormalizedString("5"), value.Inputs{"x": value.Real(5)})

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, Answer, mismatch.Parameter)
	assert.Equal(t, value.KindReal, mismatch.Expected)
	assert.Equal(t, value.KindNormalizedString, mismatch.Actual)
}

func TestSingleInput_InputKindMismatch(t *testing.T) {
	_, err := realEquals().Matches(value.Real(5), value.Inputs{"x": value.Integer(5)})

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "x", mismatch.Parameter)
	assert.Equal(t, value.KindInteger, mismatch.Actual)
	assert.True(t, errors.Is(err, ErrMalformedRequest))
}

func TestSingleInput_NilAnswer(t *testing.T) {
	_, err := realEquals().Matches(nil, value.Inputs{"x": value.Real(5)})

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, value.KindUnset, mismatch.Actual)
}

func TestMultiTypeSingleInput(t *testing.T) {
	rule := MultiTypeSingleInput("HasLength", "n", value.RatioExpressionPayload, value.IntegerPayload,
		func(answer []uint32, n int64) bool { return int64(len(answer)) == n })

	ok, err := rule.Matches(value.RatioExpression{1, 2, 3}, value.Inputs{"n": value.Integer(3)})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = rule.Matches(value.RatioExpression{1, 2}, value.Inputs{"n": value.RatioExpression{2}})
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, value.KindInteger, mismatch.Expected)
}

func TestDoubleInput(t *testing.T) {
	between := DoubleInput("Between", "a", "b", value.RealPayload, func(answer, a, b float64) bool {
		return a <= answer && answer <= b
	})

	ok, err := between.Matches(value.Real(2), value.Inputs{"a": value.Real(1), "b": value.Real(3)})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = between.Matches(value.Real(2), value.Inputs{"a": value.Real(1)})
	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "b", missing.Input)
	assert.Equal(t, []string{"a"}, missing.Present)

	_, err = between.Matches(value.Real(2), value.Inputs{"a": value.Real(1), "b": value.NormalizedString("3")})
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "b", mismatch.Parameter)
}

func TestRulesAreDeterministic(t *testing.T) {
	rule := realEquals()
	inputs := value.Inputs{"x": value.Real(1.5)}
	first, _ := rule.Matches(value.Real(1.5), inputs)
	for i := 0; i < 10; i++ {
		got, err := rule.Matches(value.Real(1.5), inputs)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}
