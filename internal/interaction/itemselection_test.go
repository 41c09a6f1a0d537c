package interaction

import (
	"testing"

	"github.com/abhisek/mathiz-eval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifySets(t *testing.T, rule string, answer, x []string) bool {
	t.Helper()
	ok, err := Registry().Classify(ItemSelectionInput, rule,
		value.NewSetOfStrings(answer...), value.Inputs{"x": value.NewSetOfStrings(x...)})
	require.NoError(t, err)
	return ok
}

func TestItemSelection_Equals(t *testing.T) {
	assert.True(t, classifySets(t, "Equals", []string{"a", "b"}, []string{"b", "a"}))
	assert.True(t, classifySets(t, "Equals", []string{"a", "a", "b"}, []string{"b", "a"}))
	assert.True(t, classifySets(t, "Equals", nil, nil))
	assert.False(t, classifySets(t, "Equals", []string{"a"}, []string{"a", "b"}))
	assert.False(t, classifySets(t, "Equals", []string{"a", "c"}, []string{"a", "b"}))
}

func TestItemSelection_IsProperSubsetOf(t *testing.T) {
	assert.True(t, classifySets(t, "IsProperSubsetOf", []string{"a"}, []string{"a", "b"}))
	assert.True(t, classifySets(t, "IsProperSubsetOf", nil, []string{"a"}))
	assert.False(t, classifySets(t, "IsProperSubsetOf", []string{"a", "b"}, []string{"a", "b"}))
	assert.False(t, classifySets(t, "IsProperSubsetOf", []string{"c"}, []string{"a", "b"}))
}

func TestItemSelection_ContainsConsistency(t *testing.T) {
	cases := [][2][]string{
		{{"a"}, {"a", "b"}},
		{{"c"}, {"a", "b"}},
		{nil, {"a"}},
		{{"a", "b", "c"}, {"c"}},
		{nil, nil},
		{{"x", "y"}, {"y", "z"}},
	}
	for _, c := range cases {
		contains := classifySets(t, "ContainsAtLeastOneOf", c[0], c[1])
		notContains := classifySets(t, "DoesNotContainAtLeastOneOf", c[0], c[1])
		assert.Equal(t, contains, !notContains, "answer=%v x=%v", c[0], c[1])
	}
	assert.True(t, classifySets(t, "ContainsAtLeastOneOf", []string{"x", "y"}, []string{"y", "z"}))
	assert.True(t, classifySets(t, "DoesNotContainAtLeastOneOf", []string{"x"}, []string{"y", "z"}))
}
