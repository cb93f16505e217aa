package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiles84/suffixlz/internal/factor"
	"github.com/xiles84/suffixlz/internal/suffixtree"
)

func TestFindSubstringClassical(t *testing.T) {
	text := []byte("abracadabra")
	assert.Equal(t, 3, FindSubstringClassical(text, []byte("cad")))
	assert.Equal(t, 0, FindSubstringClassical(text, []byte("xyz")))
	assert.Equal(t, 0, FindSubstringClassical(text, nil))
}

func TestSelfTestPassesOnFreshlyBuiltTree(t *testing.T) {
	for _, text := range []string{"a", "banana", "mississippi", "abcabcabcabc"} {
		tree, err := suffixtree.Build([]byte(text))
		require.NoError(t, err)
		assert.NoError(t, SelfTest([]byte(text), tree), "text %q", text)
	}
}

func TestSuffixArrayContainsAgreesWithClassicalScan(t *testing.T) {
	text := []byte("the quick brown fox")
	sa := suffixArray(text)

	for _, sub := range []string{"quick", "fox", "the", "nope", ""} {
		want := FindSubstringClassical(text, []byte(sub)) > 0 || sub == ""
		got := suffixArrayContains(text, sa, []byte(sub))
		if sub == "" {
			continue
		}
		assert.Equal(t, want, got, "substring %q", sub)
	}
}

func TestReplayPhrasesReconstructsLiteralOnlyInput(t *testing.T) {
	phrases := []factor.Phrase{
		{Length: 0, Next: 'a', HasLiteral: true},
		{Length: 0, Next: 'b', HasLiteral: true},
		{Length: 0, Next: 'c', HasLiteral: true},
	}
	assert.Equal(t, "abc", string(ReplayPhrases(phrases)))
}

func TestReplayPhrasesReconstructsACopy(t *testing.T) {
	// "ab" then a copy of length 2 from position 0 ("ab"), then literal 'c'.
	phrases := []factor.Phrase{
		{Length: 0, Next: 'a', HasLiteral: true},
		{Length: 0, Next: 'b', HasLiteral: true},
		{Source: 0, Length: 2, Next: 'c', HasLiteral: true},
	}
	assert.Equal(t, "ababc", string(ReplayPhrases(phrases)))
}
