package related

import "strings"

// jaccard returns the Jaccard index of two string collections treated as
// case-normalized sets: intersection size over union size. Two empty
// collections have no overlap signal, so the result is 0, not 1.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := toSet(a)
	setB := toSet(b)

	intersection := 0
	for v := range setA {
		if setB[v] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// wordJaccard is jaccard over the whitespace-split words of two texts.
func wordJaccard(a, b string) float64 {
	return jaccard(strings.Fields(a), strings.Fields(b))
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = true
		}
	}
	return set
}

// frequency counts case-normalized values while remembering first-seen
// order, so top-N selection is deterministic under equal counts.
type frequency struct {
	counts map[string]int
	order  []string
}

func newFrequency() *frequency {
	return &frequency{counts: make(map[string]int)}
}

func (f *frequency) add(value string) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return
	}
	if _, seen := f.counts[value]; !seen {
		f.order = append(f.order, value)
	}
	f.counts[value]++
}

// top returns the n most frequent values as a membership set. Equal counts
// rank in first-seen order.
func (f *frequency) top(n int) map[string]bool {
	ranked := make([]string, len(f.order))
	copy(ranked, f.order)

	// Stable sort on counts keeps first-seen order for ties.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && f.counts[ranked[j]] > f.counts[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	set := make(map[string]bool, len(ranked))
	for _, v := range ranked {
		set[v] = true
	}
	return set
}
