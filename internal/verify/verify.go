// Package verify supplies the independent oracles the rest of this
// module is checked against: a brute-force substring scan, a suffix
// array built from scratch, and a phrase-replay reconstruction, none of
// which share any code path with suffixtree or factor.
package verify

import (
	"bytes"

	"github.com/xiles84/suffixlz/internal/factor"
	"github.com/xiles84/suffixlz/internal/suffixtree"
)

// FindSubstringClassical scans text for sub with no auxiliary
// structure at all. It returns len(sub) if sub occurs in text, 0
// otherwise; this is the ultimate ground truth every other substring
// check in this package is compared against.
func FindSubstringClassical(text, sub []byte) int {
	if len(sub) == 0 {
		return 0
	}
	if bytes.Contains(text, sub) {
		return len(sub)
	}
	return 0
}

// SelfTest checks, for every non-empty substring of text, that the
// tree's own topology-only ContainsSubstring, a suffix array built
// independently via SA-IS, and the brute-force scan all agree that the
// substring is present. This mirrors running the factorizer's search
// machinery against every possible query before ever touching cost
// annotations, isolating construction bugs from annotation bugs.
func SelfTest(text []byte, tree *suffixtree.Tree) error {
	sa := suffixArray(text)
	lcp := longestCommonPrefixes(text, sa)
	if !suffixArrayIsSorted(text, sa, lcp) {
		return newInvariantf("suffix array oracle is not correctly sorted, cannot be trusted as a self-test oracle")
	}

	n := len(text)
	for end := 1; end <= n; end++ {
		for begin := 1; begin <= end; begin++ {
			sub := text[begin-1 : end]

			if !tree.ContainsSubstring(sub) {
				return newInvariantf("tree self-test failed: substring [%d,%d) not found by the tree", begin-1, end)
			}
			if !suffixArrayContains(text, sa, sub) {
				return newInvariantf("tree self-test failed: substring [%d,%d) not found by the suffix array oracle", begin-1, end)
			}
			if FindSubstringClassical(text, sub) != len(sub) {
				return newInvariantf("tree self-test failed: substring [%d,%d) not found by brute-force scan", begin-1, end)
			}
		}
	}
	return nil
}

// ReplayPhrases reconstructs the original text from a phrase sequence
// and returns it; comparing it with the input is left to the caller.
// A copy phrase reads Length bytes
// starting at Source from the output produced so far, never from input
// not yet emitted, which is what makes the factorization replayable
// with nothing but the phrase list itself.
func ReplayPhrases(phrases []factor.Phrase) []byte {
	var out []byte
	for _, p := range phrases {
		for i := 0; i < p.Length; i++ {
			out = append(out, out[p.Source+i])
		}
		if p.HasLiteral {
			out = append(out, p.Next)
		}
	}
	return out
}
