package catalog

import (
	"errors"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"

	"github.com/evergrove/mindsift/content"
	"github.com/evergrove/mindsift/related"
	"github.com/evergrove/mindsift/search"

	fuzzyscore "github.com/evergrove/mindsift/fuzzy"
)

// ErrNotFound is returned when a focal record ID is not in the catalog.
var ErrNotFound = errors.New("content not found")

// Options configures a Catalog.
type Options struct {
	// Scorer is the fuzzy scorer shared by all searches. If nil, a fresh
	// one is created, giving the catalog its own memo cache.
	Scorer *fuzzyscore.Scorer

	// Logger receives debug telemetry for search and recommendation
	// calls. If nil, logging is disabled.
	Logger *zap.Logger
}

// Catalog is the unified facade over the search and relatedness engines.
// It owns the registered narratives and mental models and exposes ranked
// search, related-item, and recommendation operations over them.
//
// All methods are safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	narratives []content.Narrative
	models     []content.MentalModel

	engine *search.Engine
	log    *zap.Logger
}

// New creates a Catalog with the given options.
func New(opts Options) *Catalog {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		engine: search.NewEngine(opts.Scorer),
		log:    logger,
	}
}

// AddNarrative registers a narrative. Registration order is preserved and
// breaks ranking ties.
func (c *Catalog) AddNarrative(n content.Narrative) {
	c.mu.Lock()
	c.narratives = append(c.narratives, n)
	c.mu.Unlock()
}

// AddModel registers a mental model.
func (c *Catalog) AddModel(m content.MentalModel) {
	c.mu.Lock()
	c.models = append(c.models, m)
	c.mu.Unlock()
}

// Records returns all registered records, narratives first, in
// registration order.
func (c *Catalog) Records() []content.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recordsLocked()
}

// Search runs a ranked fuzzy search over all registered records.
func (c *Catalog) Search(query string, opts search.Options) (search.Results, error) {
	c.mu.RLock()
	records := c.recordsLocked()
	c.mu.RUnlock()

	results, err := c.engine.Search(records, query, opts)
	if err != nil {
		return nil, err
	}
	c.log.Debug("search",
		zap.String("query", query),
		zap.Int("pool", len(records)),
		zap.Int("results", len(results)))
	return results, nil
}

// MultiSearch runs an AND-composed search across several queries.
func (c *Catalog) MultiSearch(queries []string, opts search.Options) (search.Results, error) {
	c.mu.RLock()
	records := c.recordsLocked()
	c.mu.RUnlock()

	results, err := c.engine.MultiQuerySearch(records, queries, opts)
	if err != nil {
		return nil, err
	}
	c.log.Debug("multi search",
		zap.Strings("queries", queries),
		zap.Int("results", len(results)))
	return results, nil
}

// Related returns items related to the identified record, compared within
// its own kind using the kind-specific signal weights.
func (c *Catalog) Related(kind content.Kind, id string, limit int) ([]related.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch kind {
	case content.KindNarrative:
		for _, n := range c.narratives {
			if n.NarrativeID == id {
				return related.Narratives(n, c.narratives, limit), nil
			}
		}
	case content.KindMentalModel:
		for _, m := range c.models {
			if m.ModelID == id {
				return related.Models(m, c.models, limit), nil
			}
		}
	}
	return nil, ErrNotFound
}

// Discover returns items related to the identified record across both
// content kinds, using the shared Card projection.
func (c *Catalog) Discover(kind content.Kind, id string, limit int) ([]related.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	focal, ok := c.cardLocked(kind, id)
	if !ok {
		return nil, ErrNotFound
	}
	return related.AcrossKinds(focal, c.cardsLocked(), limit), nil
}

// Recommend scores un-viewed records against the dominant tags and
// categories of the given view history.
func (c *Catalog) Recommend(history []content.ViewEvent, limit int) []related.Item {
	c.mu.RLock()
	cards := c.cardsLocked()
	c.mu.RUnlock()

	items := related.RecommendFromHistory(history, cards, limit)
	c.log.Debug("recommend",
		zap.Int("history", len(history)),
		zap.Int("results", len(items)))
	return items
}

// AlsoLike returns "you might also like" items for the identified record,
// excluding bookmarked and recently viewed content.
func (c *Catalog) AlsoLike(kind content.Kind, id string, bookmarked, recentlyViewed []string, limit int) ([]related.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	focal, ok := c.cardLocked(kind, id)
	if !ok {
		return nil, ErrNotFound
	}
	return related.AlsoLike(focal, c.cardsLocked(), bookmarked, recentlyViewed, limit), nil
}

// Suggest returns up to limit registered titles ranked by closeness to the
// partial query, for type-ahead. Matching is fuzzy and case-folded but
// separate from the tiered search scoring.
func (c *Catalog) Suggest(partial string, limit int) []string {
	if partial == "" || limit <= 0 {
		return nil
	}

	c.mu.RLock()
	titles := make([]string, 0, len(c.narratives)+len(c.models))
	for _, n := range c.narratives {
		titles = append(titles, n.NarrativeTitle)
	}
	for _, m := range c.models {
		titles = append(titles, m.Name)
	}
	c.mu.RUnlock()

	ranks := fuzzy.RankFindFold(partial, titles)
	sort.Stable(ranks)

	suggestions := make([]string, 0, limit)
	for _, r := range ranks {
		suggestions = append(suggestions, r.Target)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}

func (c *Catalog) recordsLocked() []content.Record {
	records := make([]content.Record, 0, len(c.narratives)+len(c.models))
	for _, n := range c.narratives {
		records = append(records, n)
	}
	for _, m := range c.models {
		records = append(records, m)
	}
	return records
}

func (c *Catalog) cardsLocked() []content.Card {
	cards := make([]content.Card, 0, len(c.narratives)+len(c.models))
	for _, n := range c.narratives {
		cards = append(cards, n.Card())
	}
	for _, m := range c.models {
		cards = append(cards, m.Card())
	}
	return cards
}

func (c *Catalog) cardLocked(kind content.Kind, id string) (content.Card, bool) {
	switch kind {
	case content.KindNarrative:
		for _, n := range c.narratives {
			if n.NarrativeID == id {
				return n.Card(), true
			}
		}
	case content.KindMentalModel:
		for _, m := range c.models {
			if m.ModelID == id {
				return m.Card(), true
			}
		}
	}
	return content.Card{}, false
}
