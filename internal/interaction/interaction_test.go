package interaction

import (
	"testing"

	"github.com/abhisek/mathiz-eval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Interactions(t *testing.T) {
	assert.Equal(t, []string{
		ItemSelectionInput,
		MultipleChoiceInput,
		NumericInput,
		RatioExpressionInput,
		TextInput,
	}, Registry().Interactions())
}

func TestRegistry_IsShared(t *testing.T) {
	assert.Same(t, Registry(), Registry())
}

func TestRegistry_NumericRules(t *testing.T) {
	rules, err := Registry().Rules(NumericInput)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Equals",
		"IsGreaterThan",
		"IsGreaterThanOrEqualTo",
		"IsInclusivelyBetween",
		"IsLessThan",
		"IsLessThanOrEqualTo",
		"IsWithinTolerance",
	}, rules)
}

func TestMultipleChoice_Equals(t *testing.T) {
	ok, err := Registry().Classify(MultipleChoiceInput, "Equals", value.Integer(2), value.Inputs{"x": value.Integer(2)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Registry().Classify(MultipleChoiceInput, "Equals", value.Integer(1), value.Inputs{"x": value.Integer(2)})
	require.NoError(t, err)
	assert.False(t, ok)
}
