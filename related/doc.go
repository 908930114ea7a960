// Package related scores pairwise similarity between content records and
// produces ranked "related item" and recommendation lists.
//
// Scoring accumulates independent weighted signals: category (or
// transformation) match, tag-set Jaccard similarity, domain overlap,
// free-text word overlap, and small same-value bonuses. The weights differ
// per content kind on purpose. Because signals are additive, scores can
// exceed 1: they are relative ranking signals, not probabilities, and are
// never clamped.
//
// Cross-kind comparison (AcrossKinds, AlsoLike) operates only on the Card
// projection shared by all kinds, plus a fixed bonus for candidates of a
// different kind than the focal item. RecommendFromHistory derives the
// viewer's dominant tags and categories from past view events and scores
// un-viewed candidates against them.
//
// Every variant excludes the focal record by ID, sorts descending by
// score, preserves pool order for exact ties, and truncates to the given
// limit.
package related
