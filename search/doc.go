// Package search ranks in-memory content records against free-text
// queries.
//
// The Engine scores each configured field of each record with the fuzzy
// package, keeps fields that meet the threshold, averages the qualifying
// field scores into one aggregate, and returns results sorted by score.
// Records with no qualifying field are excluded entirely rather than
// scored zero. Ordering is deterministic: equal scores preserve the input
// order of the record collection.
//
// # Usage
//
//	eng := search.NewEngine(nil)
//	results, err := eng.Search(records, "first principles",
//	    search.DefaultOptions(content.FieldTitle, content.FieldSummary))
//
// MultiQuerySearch composes several queries with AND semantics,
// intersecting per-query result sets by record ID while keeping the first
// query's ranking.
//
// # Configuration
//
// Options are validated up front: a threshold outside [0,1], a
// non-positive result cap, or an empty field list is a configuration
// error, not something to clamp. Empty queries, empty pools, and zero
// matches are normal conditions represented by an empty Results, never an
// error.
//
// # Thread Safety
//
// Engine is stateless apart from its fuzzy.Scorer, whose memo cache is
// mutex-guarded, so a single Engine is safe for concurrent use.
package search
