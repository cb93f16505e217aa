package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsEmptyInput(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)
}

func TestBuildRejectsZeroByte(t *testing.T) {
	_, err := Build([]byte("ab\x00cd"))
	require.Error(t, err)
}

func TestLeafCountMatchesInputLengthPlusOne(t *testing.T) {
	// Single-byte input is a genuine degenerate case: the phase loop
	// only runs for phases 2..n, so for n==1 it never runs at all and
	// the tree never gets a leaf for the lone "$" suffix. See
	// TestSingleByteInputHasOneLeaf.
	for _, text := range []string{"ab", "abab", "banana", "mississippi", "aaaaaaaaaa"} {
		tree, err := Build([]byte(text))
		require.NoError(t, err)
		assert.Equal(t, len(text)+1, tree.LeafCount(), "text %q", text)
	}
}

func TestSingleByteInputHasOneLeaf(t *testing.T) {
	tree, err := Build([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, 1, tree.LeafCount())
}

func TestContainsSubstringFindsEveryWindow(t *testing.T) {
	text := []byte("abracadabra")
	tree, err := Build(text)
	require.NoError(t, err)

	for end := 1; end <= len(text); end++ {
		for begin := 0; begin < end; begin++ {
			sub := text[begin:end]
			assert.True(t, tree.ContainsSubstring(sub), "expected to find %q", sub)
		}
	}
}

func TestContainsSubstringRejectsAbsentStrings(t *testing.T) {
	tree, err := Build([]byte("banana"))
	require.NoError(t, err)

	assert.False(t, tree.ContainsSubstring([]byte("xyz")))
	assert.False(t, tree.ContainsSubstring([]byte("bananas")))
}

func TestSuffixLinksReachRoot(t *testing.T) {
	tree, err := Build([]byte("mississippi"))
	require.NoError(t, err)
	assert.True(t, tree.SuffixLinksReachRoot())
}

func TestSearchFindsNoRepeatBeforeAnEarlierSourceMatches(t *testing.T) {
	tree, err := Build([]byte("abcabcabc"))
	require.NoError(t, err)
	tree.SetCostCeiling(100)

	// Nothing has been made available as a copy source yet: the very
	// first position can only ever resolve to a literal.
	match, err := tree.Search(1)
	require.NoError(t, err)
	assert.Equal(t, 0, match.Length)

	// Mark position 1 as consumed (a one-byte literal phrase), which is
	// what makes it usable as a source for later searches.
	tree.SetCost(1, 0)
	tree.PropagateAnnotation(1, 0)

	match, err = tree.Search(2)
	require.NoError(t, err)
	assert.Equal(t, 0, match.Length, "position 2 still has nothing behind it worth copying")
}
