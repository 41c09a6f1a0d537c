package classifier

import (
	"testing"

	"github.com/abhisek/mathiz-eval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Classify(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("NumericInput", realEquals()))

	ok, err := reg.Classify("NumericInput", "Equals", value.Real(3), value.Inputs{"x": value.Real(3)})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistry_UnknownInteraction(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Classify("Nope", "Equals", value.Real(3), nil)

	var unknown *UnknownInteractionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Nope", unknown.Interaction)
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.NotErrorIs(t, err, ErrMalformedRequest)
}

func TestRegistry_UnknownRule(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("NumericInput", realEquals()))

	_, err := reg.Classify("NumericInput", "IsPrime", value.Real(3), nil)
	var unknown *UnknownRuleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "IsPrime", unknown.Rule)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistry_DuplicateRule(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("NumericInput", realEquals()))
	err := reg.Register("NumericInput", realEquals())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate rule")
}

func TestRegistry_Listing(t *testing.T) {
	reg := NewRegistry()
	lt := SingleInput("IsLessThan", "x", value.RealPayload, func(a, x float64) bool { return a < x })
	require.NoError(t, reg.Register("NumericInput", realEquals(), lt))
	require.NoError(t, reg.Register("Continue"))

	assert.Equal(t, []string{"Continue", "NumericInput"}, reg.Interactions())

	rules, err := reg.Rules("NumericInput")
	require.NoError(t, err)
	assert.Equal(t, []string{"Equals", "IsLessThan"}, rules)

	_, err = reg.Rules("Missing")
	assert.ErrorIs(t, err, ErrNotRegistered)
}
