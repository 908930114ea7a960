package search

import (
	"github.com/evergrove/mindsift/content"
	"github.com/evergrove/mindsift/highlight"
)

// Match records how one field of a record matched the query.
type Match struct {
	// Field is the matched field name.
	Field string

	// Spans are the literal query occurrences within the field value,
	// ordered and non-overlapping. Empty when highlighting is disabled or
	// the match came from a non-literal tier.
	Spans []highlight.Span

	// Score is the field's fuzzy score, in [0,1].
	Score float64
}

// Result is one record admitted by a search.
type Result struct {
	// Record is the original record, shared with the caller, not copied.
	Record content.Record

	// Score is the arithmetic mean of the per-field scores that met the
	// threshold.
	Score float64

	// Matches lists the qualifying fields in Options.Fields order.
	Matches []Match

	// Highlights maps field name to rendered segments, present only when
	// Options.IncludeHighlights is set.
	Highlights map[string][]highlight.Segment
}

// Results is a slice of Result with helper methods.
type Results []Result

// IDs returns just the record IDs, in result order.
func (r Results) IDs() []string {
	ids := make([]string, len(r))
	for i, res := range r {
		ids[i] = res.Record.ID()
	}
	return ids
}

// FilterByKind returns results whose record matches the given kind.
func (r Results) FilterByKind(kind content.Kind) Results {
	var filtered Results
	for _, res := range r {
		if res.Record.Kind() == kind {
			filtered = append(filtered, res)
		}
	}
	return filtered
}

// FilterByMinScore returns results with aggregate score >= minScore.
func (r Results) FilterByMinScore(minScore float64) Results {
	var filtered Results
	for _, res := range r {
		if res.Score >= minScore {
			filtered = append(filtered, res)
		}
	}
	return filtered
}
