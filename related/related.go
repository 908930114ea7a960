package related

import (
	"sort"
	"strings"

	"github.com/evergrove/mindsift/content"
)

// Signal weights. These are design constants, not user-configurable, and
// are intentionally asymmetric per content kind: narratives lean on
// category and domains, models lean on transformation and description.
const (
	narrativeCategoryWeight = 0.4
	narrativeTagsWeight     = 0.3
	narrativeDomainsWeight  = 0.2
	narrativeTextWeight     = 0.1
	narrativeEvidenceBonus  = 0.05

	modelTransformationWeight = 0.5
	modelTagsWeight           = 0.3
	modelTextWeight           = 0.2
	modelComplexityBonus      = 0.05

	crossCategoryWeight = 0.4
	crossTagsWeight     = 0.4
	crossTitleWeight    = 0.2

	// crossKindBonus rewards candidates of a different content kind than
	// the focal item, encouraging discovery diversity.
	crossKindBonus = 0.1

	// minScore is the admission threshold for related items.
	minScore = 0.1
)

// History recommendation constants: how many frequent tags and categories
// from the view history are consulted, and what each match is worth.
const (
	historyTopTags       = 5
	historyTopCategories = 3
	historyCategoryScore = 0.5
	historyTagScore      = 0.2
)

// defaultReason is used when no individual signal name was recorded.
const defaultReason = "related content"

// Item is one related or recommended content record.
type Item struct {
	ID    string
	Kind  content.Kind
	Title string

	// Score is a relative ranking signal. Weighted signals are additive,
	// so scores are not bounded by 1; compare items to each other, never
	// to an absolute scale.
	Score float64

	// Reason concatenates the names of the signals that fired, e.g.
	// "same category, similar tags".
	Reason string
}

// Narratives ranks the pool by similarity to the focal narrative. The
// focal record itself is excluded by ID. Only candidates scoring above the
// admission threshold are returned, sorted descending; ties preserve pool
// order. A non-positive limit returns nothing.
func Narratives(focal content.Narrative, pool []content.Narrative, limit int) []Item {
	items := make([]Item, 0, len(pool))
	for _, cand := range pool {
		if cand.NarrativeID == focal.NarrativeID {
			continue
		}

		var score float64
		var reasons []string

		if focal.Category != "" && strings.EqualFold(focal.Category, cand.Category) {
			score += narrativeCategoryWeight
			reasons = append(reasons, "same category")
		}
		if sim := jaccard(focal.Tags, cand.Tags); sim > 0 {
			score += sim * narrativeTagsWeight
			reasons = append(reasons, "similar tags")
		}
		if sim := jaccard(focal.Domains, cand.Domains); sim > 0 {
			score += sim * narrativeDomainsWeight
			reasons = append(reasons, "overlapping domains")
		}
		// Word overlap over summaries is the expensive signal; skip it
		// when the cheaper signals cannot reach the admission threshold
		// anyway.
		if score > minScore/2 {
			if sim := wordJaccard(focal.Summary, cand.Summary); sim > 0 {
				score += sim * narrativeTextWeight
				reasons = append(reasons, "similar themes")
			}
		}
		if focal.EvidenceQuality != "" && strings.EqualFold(focal.EvidenceQuality, cand.EvidenceQuality) {
			score += narrativeEvidenceBonus
			reasons = append(reasons, "matching evidence quality")
		}

		if score > minScore {
			items = append(items, Item{
				ID:     cand.NarrativeID,
				Kind:   content.KindNarrative,
				Title:  cand.NarrativeTitle,
				Score:  score,
				Reason: reason(reasons),
			})
		}
	}
	return rank(items, limit)
}

// Models ranks the pool by similarity to the focal mental model, using the
// model-specific weights (transformation plays the category role).
func Models(focal content.MentalModel, pool []content.MentalModel, limit int) []Item {
	items := make([]Item, 0, len(pool))
	for _, cand := range pool {
		if cand.ModelID == focal.ModelID {
			continue
		}

		var score float64
		var reasons []string

		if focal.Transformation != "" && strings.EqualFold(focal.Transformation, cand.Transformation) {
			score += modelTransformationWeight
			reasons = append(reasons, "same transformation")
		}
		if sim := jaccard(focal.Tags, cand.Tags); sim > 0 {
			score += sim * modelTagsWeight
			reasons = append(reasons, "similar tags")
		}
		if score > minScore/2 {
			if sim := wordJaccard(focal.Description, cand.Description); sim > 0 {
				score += sim * modelTextWeight
				reasons = append(reasons, "similar description")
			}
		}
		if focal.Complexity != "" && strings.EqualFold(focal.Complexity, cand.Complexity) {
			score += modelComplexityBonus
			reasons = append(reasons, "matching complexity")
		}

		if score > minScore {
			items = append(items, Item{
				ID:     cand.ModelID,
				Kind:   content.KindMentalModel,
				Title:  cand.Name,
				Score:  score,
				Reason: reason(reasons),
			})
		}
	}
	return rank(items, limit)
}

// AcrossKinds ranks a mixed-kind pool against the focal card using only
// the fields every kind shares (category, tags, title). Candidates of a
// different kind than the focal item receive a fixed diversity bonus.
func AcrossKinds(focal content.Card, pool []content.Card, limit int) []Item {
	items := make([]Item, 0, len(pool))
	for _, cand := range pool {
		if cand.ID == focal.ID {
			continue
		}
		if item, ok := scoreCards(focal, cand); ok {
			items = append(items, item)
		}
	}
	return rank(items, limit)
}

// RecommendFromHistory scores every un-viewed candidate against the tags
// and categories that dominate the view history: membership in one of the
// top categories scores 0.5, and each matching top tag adds 0.2. Any
// positive score is included.
func RecommendFromHistory(history []content.ViewEvent, pool []content.Card, limit int) []Item {
	if len(history) == 0 {
		return []Item{}
	}

	viewed := make(map[string]bool, len(history))
	tags := newFrequency()
	categories := newFrequency()
	for _, event := range history {
		viewed[event.ID] = true
		for _, tag := range event.Tags {
			tags.add(tag)
		}
		if event.Category != "" {
			categories.add(event.Category)
		}
	}

	topTags := tags.top(historyTopTags)
	topCategories := categories.top(historyTopCategories)

	items := make([]Item, 0, len(pool))
	for _, cand := range pool {
		if viewed[cand.ID] {
			continue
		}

		var score float64
		var reasons []string

		if cand.Category != "" && topCategories[strings.ToLower(cand.Category)] {
			score += historyCategoryScore
			reasons = append(reasons, "favorite category")
		}
		matched := 0
		for _, tag := range cand.Tags {
			if topTags[strings.ToLower(tag)] {
				matched++
			}
		}
		if matched > 0 {
			score += historyTagScore * float64(matched)
			reasons = append(reasons, "frequently viewed tags")
		}

		if score > 0 {
			items = append(items, Item{
				ID:     cand.ID,
				Kind:   cand.Kind,
				Title:  cand.Title,
				Score:  score,
				Reason: reason(reasons),
			})
		}
	}
	return rank(items, limit)
}

// AlsoLike is the "you might also like" variant: cross-kind scoring over
// the pool, skipping bookmarked items and the most recently viewed ones so
// suggestions stay fresh.
func AlsoLike(focal content.Card, pool []content.Card, bookmarked, recentlyViewed []string, limit int) []Item {
	excluded := make(map[string]bool, len(bookmarked)+len(recentlyViewed))
	for _, id := range bookmarked {
		excluded[id] = true
	}
	for _, id := range recentlyViewed {
		excluded[id] = true
	}

	items := make([]Item, 0, len(pool))
	for _, cand := range pool {
		if cand.ID == focal.ID || excluded[cand.ID] {
			continue
		}
		if item, ok := scoreCards(focal, cand); ok {
			items = append(items, item)
		}
	}
	return rank(items, limit)
}

// scoreCards applies the cross-kind signals to one candidate. It reports
// false when the candidate falls below the admission threshold.
func scoreCards(focal, cand content.Card) (Item, bool) {
	var score float64
	var reasons []string

	if focal.Category != "" && strings.EqualFold(focal.Category, cand.Category) {
		score += crossCategoryWeight
		reasons = append(reasons, "same category")
	}
	if sim := jaccard(focal.Tags, cand.Tags); sim > 0 {
		score += sim * crossTagsWeight
		reasons = append(reasons, "similar tags")
	}
	if sim := wordJaccard(focal.Title, cand.Title); sim > 0 {
		score += sim * crossTitleWeight
		reasons = append(reasons, "similar title")
	}
	if focal.Kind != cand.Kind {
		score += crossKindBonus
		reasons = append(reasons, "different content type")
	}

	if score <= minScore {
		return Item{}, false
	}
	return Item{
		ID:     cand.ID,
		Kind:   cand.Kind,
		Title:  cand.Title,
		Score:  score,
		Reason: reason(reasons),
	}, true
}

// rank sorts descending by score and truncates to limit. The stable sort
// keeps pool order for exact ties.
func rank(items []Item, limit int) []Item {
	if limit <= 0 {
		return []Item{}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func reason(reasons []string) string {
	if len(reasons) == 0 {
		return defaultReason
	}
	return strings.Join(reasons, ", ")
}
