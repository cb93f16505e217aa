package suffixtree

// minMaxChild picks, among id's children, the one whose
// optimistic_min_max is smallest; ties are broken in favour of the
// child whose optimistic source is farther from exhaustion (larger
// D[optimistic_text_pos]), since that source remains usable for longer.
func (t *Tree) minMaxChild(id NodeID) NodeID {
	result := t.arena.get(id).firstChild
	cur := t.arena.get(result).rightSibling
	for cur != nullNode {
		r := t.arena.get(result)
		c := t.arena.get(cur)
		if r.annot.optimisticMinMax > c.annot.optimisticMinMax ||
			(r.annot.optimisticMinMax == c.annot.optimisticMinMax &&
				t.DistAt(r.annot.optimisticTextPos) < t.DistAt(c.annot.optimisticTextPos)) {
			result = cur
		}
		cur = t.arena.get(cur).rightSibling
	}
	return result
}

// PropagateAnnotation re-annotates the ancestors of the leaves at path
// positions textPos+length, textPos+length-1, and so on leftward, after
// a phrase of that length has just been copied out starting at textPos.
// The sweep stops at the first position whose max_str_depth is below
// textPos, since no leaf at or before it reaches textPos at all.
func (t *Tree) PropagateAnnotation(textPos, length int) {
	currentMinMax := 0
	for i := textPos + length; i > 0; i-- {
		currentMinMax = max(currentMinMax, t.cost[i])
		if t.maxStrDepth[i] < textPos {
			break
		}
		t.changeAnnotationFromLeaf(i, textPos+length, textPos-i, currentMinMax)
	}
}

func (t *Tree) changeAnnotationFromLeaf(textPos, finalPos, length, minMaxOfRange int) {
	leaf := t.arena.get(t.inversePtr[textPos])
	if minMaxOfRange > leaf.annot.minMax || leaf.annot.minMax == undefinedMinMax {
		leaf.annot.minMax = minMaxOfRange
		leaf.annot.optimisticMinMax = minMaxOfRange
	}

	parentID := t.arena.get(t.inversePtr[textPos]).parent
	for parentID != nullNode && t.arena.get(parentID).strDepth > length {
		newHolder := t.minMaxChild(parentID)
		parent := t.arena.get(parentID)

		if textPos+parent.strDepth-1 <= finalPos {
			cost := t.segm.cappedMax(textPos, textPos+parent.strDepth-1, t.Cost)
			switch {
			case parent.annot.minMax == t.Cost:
				if cost < t.Cost {
					parent.annot.minMax = cost
					parent.annot.textPos = textPos
				} else if d := t.DistAt(textPos); d != -1 && d > t.DistAt(parent.annot.textPos) {
					parent.annot.minMax = cost
					parent.annot.textPos = textPos
				}
			case cost < parent.annot.minMax:
				parent.annot.minMax = cost
				parent.annot.textPos = textPos
			}
		}

		switch {
		case parent.annot.optimisticMinMax == undefinedMinMax:
			parent.annot.optimisticMinMax = minMaxOfRange
			parent.annot.optimisticTextPos = textPos
		case parent.annot.optimisticMinMax == t.Cost:
			holder := t.arena.get(newHolder)
			if holder.annot.optimisticMinMax == t.Cost {
				if t.DistAt(holder.annot.optimisticTextPos) > t.DistAt(parent.annot.optimisticTextPos) {
					parent.annot.optimisticMinMax = holder.annot.optimisticMinMax
					parent.annot.optimisticTextPos = holder.annot.optimisticTextPos
				} else {
					parent.annot.optimisticMinMax = parent.annot.minMax
					parent.annot.optimisticTextPos = parent.annot.textPos
				}
			} else {
				parent.annot.optimisticMinMax = holder.annot.optimisticMinMax
				parent.annot.optimisticTextPos = holder.annot.optimisticTextPos
			}
		default:
			holder := t.arena.get(newHolder)
			if holder.annot.optimisticMinMax < parent.annot.minMax {
				parent.annot.optimisticMinMax = holder.annot.optimisticMinMax
				parent.annot.optimisticTextPos = holder.annot.optimisticTextPos
			} else {
				parent.annot.optimisticMinMax = parent.annot.minMax
				parent.annot.optimisticTextPos = parent.annot.textPos
			}
		}

		parentID = parent.parent
	}
}
