package suffixtree

import "github.com/xiles84/suffixlz/internal/diag"

// Match is an admissible copy source found by Search: Pos is the 1-based
// text position the copy should read from, Length is how many bytes of
// it are safe to reuse without exceeding the cost ceiling.
type Match struct {
	Pos    int
	Length int
}

// Search walks annotations from the root to find the longest prefix of
// T[q..] whose every covered source position has remaining reuse
// budget, admitting exhausted sources only when every alternative on a
// node's edge is also exhausted (the optimistic tie-break encoded in
// optimistic_min_max/optimistic_text_pos).
func (t *Tree) Search(q int) (Match, error) {
	node := findSon(t, t.root, t.text[q])
	var current Match
	j := 0

	for node != nullNode {
		n := t.arena.get(node)
		if n.annot.optimisticMinMax == undefinedMinMax {
			return current, nil
		}
		if n.annot.optimisticMinMax == t.Cost {
			if d := t.DistAt(n.annot.optimisticTextPos); d > current.Length {
				current = Match{Pos: n.annot.optimisticTextPos, Length: d}
			}
			return current, nil
		}

		k := n.edgeStart
		end := getNodeLabelEnd(t, node)
		for q+j <= t.length && k <= end && t.text[k] == t.text[q+j] {
			j++
			k++
		}

		current.Length = j
		if n.annot.optimisticTextPos == 0 {
			return current, diag.Newf(diag.Invariant, "search reached a node with no optimistic source at text position %d", q)
		}
		current.Pos = n.annot.optimisticTextPos

		if k <= end {
			return current, nil
		}
		if q+j > t.length {
			return current, nil
		}
		node = findSon(t, node, t.text[q+j])
	}

	return current, nil
}

// ContainsSubstring reports whether sub occurs anywhere in the tree's
// text, walking the tree's topology alone: it never consults the
// cost/annotation state, so it also works to sanity-check the tree's
// shape independent of anything the Factorizer has done to it.
func (t *Tree) ContainsSubstring(sub []byte) bool {
	if len(sub) == 0 {
		return true
	}
	node := findSon(t, t.root, sub[0])
	j := 0
	for node != nullNode {
		k := t.arena.get(node).edgeStart
		end := getNodeLabelEnd(t, node)
		for j < len(sub) && k <= end && t.text[k] == sub[j] {
			j++
			k++
		}
		if j == len(sub) {
			return true
		}
		if k <= end {
			return false
		}
		node = findSon(t, node, sub[j])
	}
	return false
}

// SuffixLinksReachRoot reports whether every internal node other than
// the root has a suffix link, and whether following suffix links from
// any internal node eventually reaches the root. This is a structural
// sanity check exercised by tests, not part of the hot path.
func (t *Tree) SuffixLinksReachRoot() bool {
	for id := NodeID(0); int(id) < len(t.arena.nodes); id++ {
		if id == t.root || t.arena.isLeaf(id) {
			continue
		}
		steps := 0
		cur := id
		for cur != t.root {
			n := t.arena.get(cur)
			if n.suffixLink == nullNode {
				return false
			}
			cur = n.suffixLink
			steps++
			if steps > len(t.arena.nodes) {
				return false
			}
		}
	}
	return true
}
