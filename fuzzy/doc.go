// Package fuzzy scores free-text queries against text fields.
//
// Scoring is tiered: exact equality beats substring containment, which
// beats whole-word and word-prefix matches, which beat the edit-distance
// fallback. Every score is in [0,1], so callers can compare scores across
// fields and records.
//
// A Scorer memoizes results in a bounded insertion-order cache. The cache
// is an internal optimization only: it never changes the score computed
// for a given input pair. Construct a fresh Scorer per application (or per
// test, for isolation) rather than sharing process-global state.
package fuzzy
