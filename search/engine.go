package search

import (
	"sort"
	"strings"

	"github.com/evergrove/mindsift/content"
	"github.com/evergrove/mindsift/fuzzy"
	"github.com/evergrove/mindsift/highlight"
)

// Engine searches record collections across a configurable set of fields.
// It holds no record state itself: callers pass the collection into every
// call, and records are only read, never retained.
//
// Engine is safe for concurrent use.
type Engine struct {
	scorer *fuzzy.Scorer
}

// NewEngine creates an Engine using the given scorer. A nil scorer gets a
// fresh one.
func NewEngine(scorer *fuzzy.Scorer) *Engine {
	if scorer == nil {
		scorer = fuzzy.NewScorer()
	}
	return &Engine{scorer: scorer}
}

// Search scores every record's configured fields against query and returns
// the admitted records ranked by aggregate score.
//
// A blank or whitespace-only query returns an empty result set; callers
// wanting an unfiltered listing should not go through search at all.
// Multi-valued fields are joined with a single space before scoring, and
// fields absent on a record are skipped. A record with no field at or
// above Options.FuzzyThreshold is excluded entirely. Results are sorted by
// score descending; exact ties preserve the input order.
func (e *Engine) Search(records []content.Record, query string, opts Options) (Results, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return Results{}, nil
	}

	results := make(Results, 0)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if result, ok := e.scoreRecord(rec, query, opts); ok {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results, nil
}

// MultiQuerySearch runs Search independently for each query and intersects
// the result sets by record ID (AND semantics). The intersection keeps the
// first query's ranking order and scores.
func (e *Engine) MultiQuerySearch(records []content.Record, queries []string, opts Options) (Results, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(queries) == 0 {
		return Results{}, nil
	}

	first, err := e.Search(records, queries[0], opts)
	if err != nil {
		return nil, err
	}

	surviving := make(map[string]bool, len(first))
	for _, res := range first {
		surviving[res.Record.ID()] = true
	}

	for _, query := range queries[1:] {
		matched, err := e.Search(records, query, opts)
		if err != nil {
			return nil, err
		}
		hits := make(map[string]bool, len(matched))
		for _, res := range matched {
			hits[res.Record.ID()] = true
		}
		for id := range surviving {
			if !hits[id] {
				delete(surviving, id)
			}
		}
	}

	intersected := make(Results, 0, len(surviving))
	for _, res := range first {
		if surviving[res.Record.ID()] {
			intersected = append(intersected, res)
		}
	}
	return intersected, nil
}

// scoreRecord scores every configured field of one record. It reports
// false when no field meets the threshold.
func (e *Engine) scoreRecord(rec content.Record, query string, opts Options) (Result, bool) {
	var (
		matches    []Match
		highlights map[string][]highlight.Segment
		total      float64
	)

	for _, field := range opts.Fields {
		values := rec.Field(field)
		if len(values) == 0 {
			continue
		}
		text := strings.Join(values, " ")

		score := e.scorer.Score(query, text, opts.CaseSensitive)
		if score < opts.FuzzyThreshold {
			continue
		}

		match := Match{Field: field, Score: score}
		if opts.IncludeHighlights {
			match.Spans = highlight.FindSpans(query, text, opts.CaseSensitive)
			if highlights == nil {
				highlights = make(map[string][]highlight.Segment)
			}
			highlights[field] = highlight.Render(text, match.Spans)
		}
		matches = append(matches, match)
		total += score
	}

	if len(matches) == 0 {
		return Result{}, false
	}

	return Result{
		Record:     rec,
		Score:      total / float64(len(matches)),
		Matches:    matches,
		Highlights: highlights,
	}, true
}
