package fuzzy

import (
	"strings"
	"sync"

	"github.com/evergrove/mindsift/textdist"
)

// Tier scores, highest checked first. The first tier that matches wins.
const (
	scoreExact      = 1.0
	scoreSubstring  = 0.9
	scoreWholeWord  = 0.85
	scoreWordPrefix = 0.8

	// editSimilarityFloor is the minimum edit-distance similarity that
	// still counts as a match on the fallback tier.
	editSimilarityFloor = 0.5

	// editSimilarityWeight scales fallback similarity below the word tiers.
	editSimilarityWeight = 0.7
)

// Cache bounds. When the cache reaches cacheCapacity entries, the oldest
// cacheEvictCount entries are dropped in insertion order.
const (
	cacheCapacity   = 1000
	cacheEvictCount = 100
)

type cacheKey struct {
	query string
	text  string
}

// Scorer computes tiered fuzzy relevance scores between a query and a text
// field, memoizing results in a bounded cache. Construct one Scorer per
// application or test and share it; the zero value is not usable.
//
// Scorer is safe for concurrent use.
type Scorer struct {
	mu    sync.Mutex
	cache map[cacheKey]float64
	order []cacheKey
}

// NewScorer creates a Scorer with an empty cache.
func NewScorer() *Scorer {
	return &Scorer{
		cache: make(map[cacheKey]float64, cacheCapacity),
	}
}

// Score returns a relevance score in [0,1] for query against text.
//
// Matching is tiered, first match wins: exact equality scores 1.0,
// substring containment 0.9, a whole word equal to the query 0.85, a word
// starting with the query 0.8. Otherwise the score falls back to
// edit-distance similarity scaled by 0.7, or 0 when similarity is 0.5 or
// below. An empty query or empty text scores 0.
//
// Unless caseSensitive is set, both inputs are lowercased before any
// comparison. The memo cache never changes the computed score for a given
// input pair.
func (s *Scorer) Score(query, text string, caseSensitive bool) float64 {
	if query == "" || text == "" {
		return 0
	}

	if !caseSensitive {
		query = strings.ToLower(query)
		text = strings.ToLower(text)
	}

	key := cacheKey{query: query, text: text}
	s.mu.Lock()
	if score, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return score
	}
	s.mu.Unlock()

	score := tieredScore(query, text)

	s.mu.Lock()
	if _, ok := s.cache[key]; !ok {
		if len(s.cache) >= cacheCapacity {
			s.evictOldestLocked()
		}
		s.cache[key] = score
		s.order = append(s.order, key)
	}
	s.mu.Unlock()

	return score
}

// CacheLen reports the number of memoized entries.
func (s *Scorer) CacheLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

func (s *Scorer) evictOldestLocked() {
	n := cacheEvictCount
	if n > len(s.order) {
		n = len(s.order)
	}
	for _, key := range s.order[:n] {
		delete(s.cache, key)
	}
	s.order = append(s.order[:0], s.order[n:]...)
}

func tieredScore(query, text string) float64 {
	if query == text {
		return scoreExact
	}

	if strings.Contains(text, query) {
		return scoreSubstring
	}

	words := strings.Fields(text)
	for _, word := range words {
		if word == query {
			return scoreWholeWord
		}
	}
	for _, word := range words {
		if strings.HasPrefix(word, query) {
			return scoreWordPrefix
		}
	}

	return editSimilarity(query, text)
}

// editSimilarity is the fallback tier: normalized Levenshtein similarity,
// admitted only above the floor and scaled below the word tiers.
func editSimilarity(query, text string) float64 {
	longer := len([]rune(query))
	if l := len([]rune(text)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 0
	}

	similarity := 1 - float64(textdist.Distance(query, text))/float64(longer)
	if similarity > editSimilarityFloor {
		return similarity * editSimilarityWeight
	}
	return 0
}
