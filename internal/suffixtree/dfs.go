package suffixtree

// dfsForInversePointers walks the freshly built tree, assigning each
// node its str_depth, resetting annotations to their un-propagated
// state, and recording each leaf's position in inversePtr and
// maxStrDepth. depth is the path length from the root to node's parent
// plus node's own edge length. It returns the number of leaves in the
// subtree rooted at id.
//
// Leaf edge lengths are computed from the node's raw, possibly-stale
// edgeEnd field rather than getNodeLabelEnd: a leaf's edgeEnd was frozen
// at whatever the virtual end was when the leaf was created, but that
// staleness is harmless here because a leaf's own str_depth is never
// read again; only an internal node's str_depth (always exact, since
// internal edges never grow) participates in propagation.
func (t *Tree) dfsForInversePointers(id NodeID, depth int) int {
	node := t.arena.get(id)
	node.strDepth = depth
	node.annot.minMax = undefinedMinMax
	node.annot.optimisticMinMax = undefinedMinMax

	if node.firstChild == nullNode {
		t.inversePtr[node.pathPosition] = id
		t.maxStrDepth[node.pathPosition] = node.pathPosition + t.arena.get(node.parent).strDepth - 1
		node.annot.textPos = node.pathPosition
		node.annot.optimisticTextPos = node.pathPosition
		return 1
	}

	node.annot.textPos = 0
	node.annot.optimisticTextPos = 0

	leaves := 0
	child := node.firstChild
	for child != nullNode {
		c := t.arena.get(child)
		edgeLen := c.edgeEnd - c.edgeStart + 1
		leaves += t.dfsForInversePointers(child, depth+edgeLen)
		child = t.arena.get(child).rightSibling
	}
	return leaves
}
