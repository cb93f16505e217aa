package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiles84/suffixlz/internal/factor"
	"github.com/xiles84/suffixlz/internal/suffixtree"
	"github.com/xiles84/suffixlz/internal/verify"
)

func runFactorizer(t *testing.T, text string, cost int) []factor.Phrase {
	t.Helper()
	tree, err := suffixtree.Build([]byte(text))
	require.NoError(t, err)
	tree.SetCostCeiling(cost)

	phrases, err := factor.New(tree, nil).Run()
	require.NoError(t, err)
	return phrases
}

func TestFactorizerReplayReconstructsInput(t *testing.T) {
	cases := []string{
		"a",
		"aaaaaaaaaaaaa",
		"abracadabra",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
		"abababababababab",
	}

	for _, text := range cases {
		for _, cost := range []int{1, 2, 4, 1000} {
			phrases := runFactorizer(t, text, cost)
			got := verify.ReplayPhrases(phrases)
			assert.Equal(t, text, string(got), "text %q cost %d", text, cost)
		}
	}
}

func TestFactorizerNeverExceedsCostCeiling(t *testing.T) {
	tree, err := suffixtree.Build([]byte("aaaaaaaaaaaaaaaaaaaa"))
	require.NoError(t, err)
	tree.SetCostCeiling(2)

	_, err = factor.New(tree, nil).Run()
	require.NoError(t, err)

	for pos := 1; pos <= tree.InputLength(); pos++ {
		assert.LessOrEqual(t, tree.CostAt(pos), 2)
	}
}

func TestFactorizerCallsProgress(t *testing.T) {
	tree, err := suffixtree.Build([]byte("banana banana banana"))
	require.NoError(t, err)
	tree.SetCostCeiling(10)

	calls := 0
	_, err = factor.New(tree, func(textPos, matchLength, total int) {
		calls++
		assert.GreaterOrEqual(t, textPos, 1)
		assert.LessOrEqual(t, textPos, total)
	}).Run()
	require.NoError(t, err)
	assert.Greater(t, calls, 0)
}

func TestFactorizerOnSingleByteInput(t *testing.T) {
	phrases := runFactorizer(t, "x", 5)
	require.Len(t, phrases, 1)
	assert.Equal(t, 0, phrases[0].Length)
	assert.Equal(t, -1, phrases[0].Source)
	assert.True(t, phrases[0].HasLiteral)
	assert.Equal(t, byte('x'), phrases[0].Next)
}

func TestFactorizerLiteralPhrasesHaveSourceMinusOne(t *testing.T) {
	// Nothing has been made available as a copy source yet, so the
	// opening phrases of any factorization are bare literals with no
	// preceding copy; their Source must be -1, matching the original
	// implementation's "pos-1" convention for an unset match position.
	phrases := runFactorizer(t, "abc", 100)
	require.NotEmpty(t, phrases)
	for _, p := range phrases {
		if p.Length == 0 {
			assert.Equal(t, -1, p.Source)
		}
	}
}
