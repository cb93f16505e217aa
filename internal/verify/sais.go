package verify

import "github.com/xiles84/suffixlz/internal/diag"

// suffixArray builds the suffix array of text using the SA-IS
// algorithm: classify each position as S-type or L-type, extract the
// LMS positions, induce-sort them, recursively name and sort the
// reduced problem, then induce-sort the full array from the ordered
// LMS positions. It exists purely as a second, independent way of
// answering "does this substring occur" during self-testing, built
// from scratch rather than sharing any code with the suffix tree.
func suffixArray(text []byte) []int {
	encoded, alphabetSize := encodeBytes(text)
	return saisEntry(encoded, alphabetSize)
}

func encodeBytes(text []byte) ([]int, int) {
	encoded := make([]int, len(text)+1)
	maxVal := 0
	for i, b := range text {
		encoded[i] = int(b) + 1
		if encoded[i] > maxVal {
			maxVal = encoded[i]
		}
	}
	encoded[len(text)] = 0
	return encoded, maxVal + 1
}

func saisEntry(s []int, alphabetSize int) []int {
	n := len(s)
	return sais(s, alphabetSize, n, make([]int, n), make([]int, n))
}

func sais(s []int, alphabetSize, n int, sa []int, lmsNames []int) []int {
	sa = sa[:n]
	for i := range sa {
		sa[i] = -1
	}
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	sType := make([]bool, n)
	sType[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			sType[i] = true
		case s[i] > s[i+1]:
			sType[i] = false
		default:
			sType[i] = sType[i+1]
		}
	}

	var lmsPositions []int
	for i := 1; i < n; i++ {
		if sType[i] && !sType[i-1] {
			lmsPositions = append(lmsPositions, i)
		}
	}

	sa = induceSort(s, sa, sType, alphabetSize, lmsPositions)

	var sortedLMS []int
	for _, pos := range sa {
		if pos > 0 && sType[pos] && !sType[pos-1] {
			sortedLMS = append(sortedLMS, pos)
		}
	}

	lmsNames = lmsNames[:n]
	for i := range lmsNames {
		lmsNames[i] = -1
	}
	name := 0
	prev := -1
	for _, pos := range sortedLMS {
		if prev != -1 && !lmsSubstringEqual(s, sType, prev, pos) {
			name++
		}
		lmsNames[pos] = name
		prev = pos
	}
	numNames := name + 1

	reduced := make([]int, 0, len(lmsPositions))
	for _, pos := range lmsPositions {
		reduced = append(reduced, lmsNames[pos])
	}

	var reducedSA []int
	if numNames < len(reduced) {
		reducedSA = sais(reduced, numNames, len(reduced), sa, lmsNames)
	} else {
		reducedSA = make([]int, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}

	orderedLMS := make([]int, len(reducedSA))
	for i, idx := range reducedSA {
		orderedLMS[i] = lmsPositions[idx]
	}

	for i := range sa {
		sa[i] = -1
	}
	return induceSort(s, sa, sType, alphabetSize, orderedLMS)
}

func induceSort(s []int, sa []int, sType []bool, alphabetSize int, lms []int) []int {
	bucketSizes := make([]int, alphabetSize)
	for _, c := range s {
		bucketSizes[c]++
	}

	tails := bucketEdges(bucketSizes, true)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := bucketEdges(bucketSizes, false)
	for i := range sa {
		pos := sa[i]
		if pos > 0 && !sType[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = bucketEdges(bucketSizes, true)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && sType[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}

	return sa
}

func bucketEdges(bucketSizes []int, tail bool) []int {
	edges := make([]int, len(bucketSizes))
	sum := 0
	for i, size := range bucketSizes {
		if tail {
			sum += size
			edges[i] = sum - 1
		} else {
			edges[i] = sum
			sum += size
		}
	}
	return edges
}

func lmsSubstringEqual(s []int, sType []bool, i, j int) bool {
	n := len(s)
	for {
		if s[i] != s[j] {
			return false
		}
		iIsLMS := i > 0 && sType[i] && !sType[i-1]
		jIsLMS := j > 0 && sType[j] && !sType[j-1]
		if iIsLMS && jIsLMS {
			return true
		}
		if iIsLMS != jIsLMS {
			return false
		}
		i++
		j++
		if i >= n || j >= n {
			return false
		}
	}
}

// suffixArrayContains reports whether sub occurs in text, by binary
// searching the suffix array built above rather than scanning linearly
// or consulting the tree. A mismatch between this and the tree's own
// ContainsSubstring (or FindSubstringClassical in verify.go) during
// self-test indicates a construction bug, not a cost/annotation bug,
// since this oracle never looks at costs.
func suffixArrayContains(text []byte, sa []int, sub []byte) bool {
	lo, hi := 0, len(sa)
	for lo < hi {
		mid := (lo + hi) / 2
		if compareSuffix(text, sa[mid], sub) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(sa) {
		return false
	}
	return hasPrefix(text[sa[lo]:], sub)
}

func compareSuffix(text []byte, pos int, query []byte) int {
	i := 0
	for i < len(query) && pos+i < len(text) {
		if text[pos+i] != query[i] {
			return int(text[pos+i]) - int(query[i])
		}
		i++
	}
	if i < len(query) {
		return -1
	}
	return 0
}

func hasPrefix(text, prefix []byte) bool {
	if len(prefix) > len(text) {
		return false
	}
	for i := range prefix {
		if text[i] != prefix[i] {
			return false
		}
	}
	return true
}

func newInvariantf(format string, args ...interface{}) error {
	return diag.Newf(diag.Invariant, format, args...)
}
