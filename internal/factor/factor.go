// Package factor implements the greedy bounded-cost factorizer that
// drives a suffixtree.Tree to a full phrase decomposition of its input.
package factor

import (
	"github.com/xiles84/suffixlz/internal/diag"
	"github.com/xiles84/suffixlz/internal/suffixtree"
)

// Phrase is one emitted unit of the factorization: either a copy of
// Length bytes starting at Source (0-based into the original input),
// followed by the single literal byte Next, or, when Length is 0, a
// bare literal Next with no preceding copy, in which case Source is -1.
// When a copy runs to the end of the input no literal follows it, and
// HasLiteral is false.
type Phrase struct {
	Source     int
	Length     int
	Next       byte
	HasLiteral bool
}

// ProgressFunc is called once per phrase with the 1-based text
// position the phrase starts at, its match length, and the total input
// length, so a caller can render throttled progress output.
type ProgressFunc func(textPos, matchLength, total int)

// Factorizer runs the greedy loop: at each step it asks the tree for
// the longest admissible match at the current position, charges every
// source byte the match reuses, backfills the distance-to-exhaustion
// array when a source is driven to its cost ceiling, and re-propagates
// annotations before advancing past the match and its trailing literal.
type Factorizer struct {
	tree     *suffixtree.Tree
	progress ProgressFunc
}

// New builds a Factorizer over tree, which must already have its cost
// ceiling set via SetCostCeiling.
func New(tree *suffixtree.Tree, progress ProgressFunc) *Factorizer {
	return &Factorizer{tree: tree, progress: progress}
}

// Run performs the full factorization and returns the resulting phrase
// sequence. It fails with diag.Invariant if any position's reuse count
// would exceed the tree's cost ceiling, which should never happen given
// a correctly propagated annotation.
func (f *Factorizer) Run() ([]Phrase, error) {
	t := f.tree
	n := t.InputLength()
	var phrases []Phrase
	positionOfPreviousExhausted := 0

	for textPos := 1; textPos <= n; {
		match, err := t.Search(textPos)
		if err != nil {
			return nil, err
		}

		if f.progress != nil {
			f.progress(textPos, match.Length, n)
		}

		k := 0
		for i := 0; i < match.Length; i++ {
			srcPos := match.Pos + k
			value := t.CostAt(srcPos) + 1
			if value > t.Cost {
				return nil, diag.Newf(diag.Invariant, "reuse cost at position %d would exceed the ceiling (%d > %d)", textPos+i, value, t.Cost)
			}
			t.SetCost(textPos+i, value)

			if value == t.Cost {
				t.SetDist(textPos+i, 0)
				for p := textPos + i - 1; p > positionOfPreviousExhausted; p-- {
					t.SetDist(p, t.DistAt(p+1)+1)
				}
				positionOfPreviousExhausted = textPos + i
			}

			k++
			if match.Pos+k == textPos {
				// The copy has caught up with itself: the source run
				// repeats starting from its own beginning, the classic
				// LZ77 self-overlapping run.
				k = 0
			}
		}

		if textPos+match.Length <= n {
			t.SetCost(textPos+match.Length, 0)
		}

		t.PropagateAnnotation(textPos, match.Length)

		source := match.Pos - 1

		nextPos := textPos + match.Length
		if nextPos > n {
			// The match consumed the rest of the input; there is no
			// trailing literal to emit.
			phrases = append(phrases, Phrase{Source: source, Length: match.Length})
			break
		}

		phrases = append(phrases, Phrase{Source: source, Length: match.Length, Next: t.At(nextPos), HasLiteral: true})
		textPos = nextPos + 1
	}

	return phrases, nil
}
