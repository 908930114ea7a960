// Package textdist provides the edit-distance primitive used by fuzzy
// scoring.
package textdist

// dissimilarLengthRatio is the length-difference ratio beyond which two
// strings are assumed maximally dissimilar and the matrix is skipped.
const dissimilarLengthRatio = 0.5

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single-rune insertions, deletions, and substitutions required
// to transform one into the other.
//
// When the lengths differ by more than half the longer length, Distance
// short-circuits and returns the longer length without computing the
// matrix. On a fuzzy-search workload the exact distance between strings of
// wildly different length is never consulted, so the bounded inaccuracy is
// an acceptable trade for speed.
//
// Distance is a total, deterministic function: it never fails, is
// symmetric, and returns 0 iff a == b.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	longer, shorter := len(ra), len(rb)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	if float64(longer-shorter)/float64(longer) > dissimilarLengthRatio {
		return longer
	}

	// Two rolling rows instead of the full matrix: O(min(len)) space.
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minOf(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
