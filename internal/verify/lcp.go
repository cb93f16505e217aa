package verify

// longestCommonPrefixes computes, via Kasai's algorithm, the LCP array
// for the suffix array sa of text: lcp[i] is the length of the longest
// common prefix shared by the suffixes at sa[i-1] and sa[i] (lcp[0] is
// always 0, since there is no predecessor).
func longestCommonPrefixes(text []byte, sa []int) []int {
	n := len(sa)
	lcp := make([]int, n)
	rank := make([]int, n)
	for i, pos := range sa {
		rank[pos] = i
	}

	h := 0
	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			continue
		}
		j := sa[rank[i]-1]
		for i+h < len(text) && j+h < len(text) && text[i+h] == text[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}

// suffixArrayIsSorted checks the structural invariant the self-test
// actually relies on: consecutive suffix array entries must agree on
// exactly their LCP's worth of leading bytes and then strictly
// increase, which is only possible if the SA-IS construction above is
// correct and therefore a trustworthy independent oracle.
func suffixArrayIsSorted(text []byte, sa []int, lcp []int) bool {
	for i := 1; i < len(sa); i++ {
		a, b := sa[i-1], sa[i]
		l := lcp[i]
		if a+l < len(text) && b+l < len(text) && text[a+l] >= text[b+l] {
			return false
		}
	}
	return true
}
