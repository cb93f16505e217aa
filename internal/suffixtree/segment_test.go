package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentTreeRangeMax(t *testing.T) {
	st := newSegmentTree([]int{3, 1, 4, 1, 5, 9, 2, 6})

	assert.Equal(t, 9, st.cappedMax(0, 7, 100))
	assert.Equal(t, 4, st.cappedMax(0, 2, 100))
	assert.Equal(t, 6, st.cappedMax(6, 7, 100))
	assert.Equal(t, 1, st.cappedMax(1, 1, 100))
}

func TestSegmentTreeUpdateIsReflectedInRangeMax(t *testing.T) {
	st := newSegmentTree([]int{0, 0, 0, 0})
	st.update(2, 7)
	assert.Equal(t, 7, st.cappedMax(0, 3, 100))
	assert.Equal(t, 0, st.cappedMax(0, 1, 100))
}

func TestSegmentTreeCappedMaxShortCircuitsAtCeiling(t *testing.T) {
	st := newSegmentTree([]int{1, 2, 3, 10, 5})
	// Once the ceiling of 3 is reached, cappedMax only promises a result
	// at or above it; for this input the node holding 10 is folded in
	// during the same step, so 10 is what comes back.
	assert.GreaterOrEqual(t, st.cappedMax(0, 4, 3), 3)
}
