// Package highlight locates literal query occurrences in a text field and
// renders them as alternating plain/highlighted segments.
//
// Highlighting is independent of fuzzy scoring: only literal substring
// hits are marked, regardless of which scoring tier admitted the record.
// Span offsets are rune offsets so that case normalization cannot skew
// positions, and rendering is a strict partition of the input: the
// concatenation of all segments always reproduces the original text.
package highlight

import (
	"sort"
	"unicode"
)

// Span is a [Start,End) rune-offset range within a text.
type Span struct {
	Start int
	End   int
}

// Segment is a run of text that is either highlighted or plain.
type Segment struct {
	Text        string
	Highlighted bool
}

// FindSpans returns every non-overlapping occurrence of the literal query
// in text, scanning left to right. Comparison is case-normalized unless
// caseSensitive is set. An empty query yields no spans.
func FindSpans(query, text string, caseSensitive bool) []Span {
	q := []rune(query)
	t := []rune(text)
	if len(q) == 0 || len(t) == 0 || len(q) > len(t) {
		return nil
	}

	if !caseSensitive {
		q = lowerRunes(q)
		t = lowerRunes(t)
	}

	var spans []Span
	for i := 0; i+len(q) <= len(t); {
		if runesEqual(t[i:i+len(q)], q) {
			spans = append(spans, Span{Start: i, End: i + len(q)})
			i += len(q)
			continue
		}
		i++
	}
	return spans
}

// Render splits text into alternating plain and highlighted segments
// covering the input exactly once. Overlapping and adjacent spans are
// merged first; spans outside the text are clamped. With no spans the
// whole text is returned as a single plain segment.
func Render(text string, spans []Span) []Segment {
	runes := []rune(text)
	merged := mergeSpans(spans, len(runes))
	if len(merged) == 0 {
		return []Segment{{Text: text}}
	}

	segments := make([]Segment, 0, 2*len(merged)+1)
	pos := 0
	for _, span := range merged {
		if span.Start > pos {
			segments = append(segments, Segment{Text: string(runes[pos:span.Start])})
		}
		segments = append(segments, Segment{Text: string(runes[span.Start:span.End]), Highlighted: true})
		pos = span.End
	}
	if pos < len(runes) {
		segments = append(segments, Segment{Text: string(runes[pos:])})
	}
	return segments
}

// Annotate renders text with each highlighted segment wrapped in the given
// open/close markers, e.g. Annotate(text, spans, "<mark>", "</mark>").
func Annotate(text string, spans []Span, open, close string) string {
	var out []byte
	for _, seg := range Render(text, spans) {
		if seg.Highlighted {
			out = append(out, open...)
			out = append(out, seg.Text...)
			out = append(out, close...)
			continue
		}
		out = append(out, seg.Text...)
	}
	return string(out)
}

// mergeSpans sorts, clamps, and merges overlapping or adjacent spans.
func mergeSpans(spans []Span, limit int) []Span {
	valid := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 {
			s.Start = 0
		}
		if s.End > limit {
			s.End = limit
		}
		if s.Start < s.End {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		if valid[i].Start != valid[j].Start {
			return valid[i].Start < valid[j].Start
		}
		return valid[i].End < valid[j].End
	})

	merged := valid[:1]
	for _, s := range valid[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
