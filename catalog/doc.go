// Package catalog provides a unified facade over the search and
// relatedness engines.
//
// A Catalog owns the registered narratives and mental models, one shared
// fuzzy scorer (and therefore one memo cache), and an optional zap logger.
// It is the recommended entry point for most consumers:
//
//	cat := catalog.New(catalog.Options{})
//	cat.AddNarrative(content.Narrative{NarrativeID: "n1", NarrativeTitle: "First Principles"})
//
//	results, err := cat.Search("first",
//	    search.DefaultOptions(content.FieldTitle, content.FieldSummary))
//
//	items, err := cat.Related(content.KindNarrative, "n1", 5)
//
// All Catalog methods are safe for concurrent use.
package catalog
