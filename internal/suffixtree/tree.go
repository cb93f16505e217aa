// Package suffixtree builds an annotated Ukkonen suffix tree over a byte
// string and keeps, at every node, the information a bounded-cost LZ
// factorizer needs to find admissible matches in amortized-linear time:
// a per-position reuse cost array, a segment tree for range-max cost
// queries, and a min_max/optimistic_min_max annotation pair propagated
// from leaves on every phrase emission.
package suffixtree

import (
	"github.com/xiles84/suffixlz/internal/diag"
)

// Tree is an Ukkonen suffix tree over a single input string, augmented
// with the cost-tracking arrays the Annotator and Searcher need. A Tree
// is built once via Build and then mutated in place by Factorizer as
// phrases are emitted; it is not safe for concurrent use.
type Tree struct {
	arena  *arena
	text   []byte // 1-based: text[0] unused, text[1..length] valid, text[length] is the sentinel
	root   NodeID
	e      int // virtual end shared by every leaf edge during and after construction
	length int // n+1, where n is the real input length (excludes the sentinel)

	suffixless NodeID // the single pending node awaiting a suffix link, or nullNode

	cost        []int
	maxStrDepth []int
	inversePtr  []NodeID
	dist        []int // D array: distance to the next exhausted position, -1 if unknown
	segm        *segmentTree

	numLeaves int

	// Cost is the reuse ceiling (COST in the spec). It must be set before
	// the first call to Search or PropagateAnnotation; Build leaves it
	// at zero, which callers must override via SetCostCeiling.
	Cost int
}

// SetCostCeiling fixes the maximum number of times any text position may
// be reused as a copy source before it is considered exhausted.
func (t *Tree) SetCostCeiling(cost int) {
	t.Cost = cost
}

// InputLength returns n, the length of the original input in bytes
// (excluding the sentinel appended during construction).
func (t *Tree) InputLength() int {
	return t.length - 1
}

// LeafCount returns the number of leaves in the tree. For inputs of two
// or more bytes it equals InputLength()+1, one leaf per suffix including
// the sentinel. A one-byte input has a single leaf: the phase loop does
// not run for it, so no leaf is created for the lone sentinel suffix.
func (t *Tree) LeafCount() int {
	return t.numLeaves
}

// At returns the byte at 1-based text position pos, where pos ranges
// over [1, InputLength()]. Position InputLength()+1 yields the sentinel.
func (t *Tree) At(pos int) byte {
	return t.text[pos]
}

// CostAt returns the current reuse count at 1-based text position pos.
func (t *Tree) CostAt(pos int) int {
	return t.cost[pos]
}

// SetCost records a new reuse count at 1-based text position pos and
// keeps the segment tree in sync.
func (t *Tree) SetCost(pos, value int) {
	t.cost[pos] = value
	t.segm.update(pos, value)
}

// DistAt returns D[pos], the distance from pos to the next exhausted
// position, or -1 if that distance is not yet known. Out-of-range
// positions are treated as unknown rather than panicking, since the
// Annotator probes positions near the edges of the text.
func (t *Tree) DistAt(pos int) int {
	if pos < 0 || pos >= len(t.dist) {
		return -1
	}
	return t.dist[pos]
}

// SetDist records D[pos].
func (t *Tree) SetDist(pos, value int) {
	t.dist[pos] = value
}

// Build constructs the annotated suffix tree for input using Ukkonen's
// online algorithm, then runs the post-construction DFS that fixes
// str_depth, inverse_pointers and max_str_depth. Callers must still call
// SetCostCeiling before using Search or PropagateAnnotation.
func Build(input []byte) (*Tree, error) {
	n := len(input)
	if n == 0 {
		return nil, diag.Newf(diag.InputInvalid, "input must not be empty")
	}
	for i, b := range input {
		if b == 0 {
			return nil, diag.Newf(diag.InputInvalid, "input contains a zero byte at offset %d, reserved as the tree's sentinel", i)
		}
	}

	length := n + 1 // n real characters plus the sentinel position

	t := &Tree{length: length}
	t.text = make([]byte, length+2)
	copy(t.text[1:], input)
	t.text[length] = 0 // sentinel, guaranteed distinct from every input byte

	t.arena = newArena(2*length + 4)
	t.root = t.arena.create(nullNode, 0, 0, 0)
	t.suffixless = nullNode

	t.cost = make([]int, length+2)
	for i := range t.cost {
		t.cost[i] = length + 1
	}
	t.segm = newSegmentTree(t.cost)

	firstLeaf := t.arena.create(t.root, 1, length, 1)
	t.arena.get(t.root).firstChild = firstLeaf
	t.e = length

	p := treePos{node: t.root, edgePos: 0}
	extension := 2
	repeated := false
	for phase := 2; phase <= n; phase++ {
		t.spa(&p, phase, &extension, &repeated)
	}

	t.maxStrDepth = make([]int, length+2)
	t.inversePtr = make([]NodeID, length+2)
	t.numLeaves = t.dfsForInversePointers(t.root, 0)

	for i := 2; i <= length; i++ {
		if t.maxStrDepth[i-1] > t.maxStrDepth[i] {
			t.maxStrDepth[i] = t.maxStrDepth[i-1]
		}
	}

	t.dist = make([]int, length+1)
	for i := range t.dist {
		t.dist[i] = -1
	}

	return t, nil
}

// DeleteSubtree detaches id from the tree. The arena's backing storage
// is not reclaimed, matching Go's GC-managed lifetime for the rest of
// the tree; this exists for parity with the construction-time teardown
// path and is not exercised during normal factorization.
func (t *Tree) DeleteSubtree(id NodeID) {
	if id == t.root {
		return
	}
	t.arena.unlink(id)
}
