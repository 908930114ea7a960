package related

import (
	"math"
	"strings"
	"testing"

	"github.com/evergrove/mindsift/content"
)

func TestNarratives_CategoryAndTags(t *testing.T) {
	focal := content.Narrative{
		NarrativeID:    "n1",
		NarrativeTitle: "Anchoring",
		Category:       "Decision Science",
		Tags:           []string{"bias", "judgment", "pricing"},
	}
	pool := []content.Narrative{
		focal,
		{
			NarrativeID:    "n2",
			NarrativeTitle: "Framing",
			Category:       "Decision Science",
			Tags:           []string{"bias", "judgment", "language"},
		},
	}

	items := Narratives(focal, pool, 10)
	if len(items) != 1 {
		t.Fatalf("Narratives() = %d items, want 1", len(items))
	}

	// Category 0.4 + tag Jaccard (2/4 = 0.5) * 0.3 = 0.55.
	want := 0.4 + 0.5*0.3
	if math.Abs(items[0].Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", items[0].Score, want)
	}
	if items[0].Reason != "same category, similar tags" {
		t.Errorf("reason = %q, want %q", items[0].Reason, "same category, similar tags")
	}
}

func TestNarratives_ExcludesFocal(t *testing.T) {
	focal := content.Narrative{NarrativeID: "n1", Category: "X", Tags: []string{"a"}}
	pool := []content.Narrative{focal}

	if items := Narratives(focal, pool, 10); len(items) != 0 {
		t.Errorf("Narratives() included the focal record: %v", items)
	}
}

func TestNarratives_BelowThresholdExcluded(t *testing.T) {
	focal := content.Narrative{NarrativeID: "n1", Category: "A", Tags: []string{"x"}}
	pool := []content.Narrative{
		{NarrativeID: "n2", Category: "B", Tags: []string{"y"}},
	}

	if items := Narratives(focal, pool, 10); len(items) != 0 {
		t.Errorf("Narratives() admitted a candidate with no shared signals: %v", items)
	}
}

func TestNarratives_AllSignals(t *testing.T) {
	focal := content.Narrative{
		NarrativeID:     "n1",
		Category:        "Decision Science",
		Tags:            []string{"bias"},
		Domains:         []string{"economics"},
		Summary:         "how anchors distort estimates",
		EvidenceQuality: "high",
	}
	cand := content.Narrative{
		NarrativeID:     "n2",
		NarrativeTitle:  "Framing",
		Category:        "decision science", // case-insensitive match
		Tags:            []string{"bias"},
		Domains:         []string{"economics"},
		Summary:         "how framing distort choices",
		EvidenceQuality: "high",
	}

	items := Narratives(focal, []content.Narrative{cand}, 10)
	if len(items) != 1 {
		t.Fatalf("Narratives() = %d items, want 1", len(items))
	}

	// category 0.4 + tags 1.0*0.3 + domains 1.0*0.2 +
	// text (2 shared of 6 distinct words)*0.1 + evidence 0.05.
	want := 0.4 + 0.3 + 0.2 + (2.0/6.0)*0.1 + 0.05
	if math.Abs(items[0].Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", items[0].Score, want)
	}
	for _, signal := range []string{"same category", "similar tags", "overlapping domains", "similar themes", "matching evidence quality"} {
		if !strings.Contains(items[0].Reason, signal) {
			t.Errorf("reason %q missing signal %q", items[0].Reason, signal)
		}
	}
}

func TestNarratives_TextSkippedWhenCheapSignalsTooWeak(t *testing.T) {
	// No category/tag/domain overlap: partial score 0 never exceeds half
	// the threshold, so even identical summaries admit nothing.
	focal := content.Narrative{NarrativeID: "n1", Summary: "identical summary text"}
	pool := []content.Narrative{
		{NarrativeID: "n2", Summary: "identical summary text"},
	}

	if items := Narratives(focal, pool, 10); len(items) != 0 {
		t.Errorf("Narratives() = %v, want no items when only text overlaps", items)
	}
}

func TestModels_TransformationWeights(t *testing.T) {
	focal := content.MentalModel{
		ModelID:        "m1",
		Name:           "Inversion",
		Transformation: "reframing",
		Tags:           []string{"thinking", "problem-solving"},
		Complexity:     "low",
	}
	cand := content.MentalModel{
		ModelID:        "m2",
		Name:           "Second-Order Thinking",
		Transformation: "reframing",
		Tags:           []string{"thinking", "consequences"},
		Complexity:     "low",
	}

	items := Models(focal, []content.MentalModel{cand}, 10)
	if len(items) != 1 {
		t.Fatalf("Models() = %d items, want 1", len(items))
	}

	// transformation 0.5 + tags (1/3)*0.3 + complexity 0.05.
	want := 0.5 + (1.0/3.0)*0.3 + 0.05
	if math.Abs(items[0].Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", items[0].Score, want)
	}
	if items[0].Kind != content.KindMentalModel {
		t.Errorf("kind = %v, want %v", items[0].Kind, content.KindMentalModel)
	}
}

func TestAcrossKinds_DifferentKindBonus(t *testing.T) {
	focal := content.Card{ID: "n1", Kind: content.KindNarrative, Category: "systems"}
	pool := []content.Card{
		{ID: "m1", Kind: content.KindMentalModel, Title: "Feedback Loops", Category: "systems"},
		{ID: "n2", Kind: content.KindNarrative, Title: "Stocks and Flows", Category: "systems"},
	}

	items := AcrossKinds(focal, pool, 10)
	if len(items) != 2 {
		t.Fatalf("AcrossKinds() = %d items, want 2", len(items))
	}

	// The model gets category 0.4 + kind bonus 0.1; the narrative only 0.4.
	if items[0].ID != "m1" {
		t.Errorf("first item = %s, want the cross-kind candidate ranked first", items[0].ID)
	}
	if math.Abs(items[0].Score-0.5) > 1e-9 {
		t.Errorf("cross-kind score = %v, want 0.5", items[0].Score)
	}
	if !strings.Contains(items[0].Reason, "different content type") {
		t.Errorf("reason = %q, missing kind bonus signal", items[0].Reason)
	}
}

func TestAcrossKinds_BonusAloneNotAdmitted(t *testing.T) {
	focal := content.Card{ID: "n1", Kind: content.KindNarrative, Title: "Anchoring"}
	pool := []content.Card{
		{ID: "m1", Kind: content.KindMentalModel, Title: "Completely Unrelated"},
	}

	if items := AcrossKinds(focal, pool, 10); len(items) != 0 {
		t.Errorf("AcrossKinds() admitted on the kind bonus alone: %v", items)
	}
}

func TestRecommendFromHistory(t *testing.T) {
	history := []content.ViewEvent{
		{ID: "v1", Category: "Decision Science", Tags: []string{"bias", "judgment"}},
		{ID: "v2", Category: "Decision Science", Tags: []string{"bias"}},
		{ID: "v3", Category: "Systems", Tags: []string{"feedback"}},
	}
	pool := []content.Card{
		{ID: "v1", Title: "Already Seen", Category: "Decision Science", Tags: []string{"bias"}},
		{ID: "c1", Title: "Hindsight", Category: "Decision Science", Tags: []string{"bias", "memory"}},
		{ID: "c2", Title: "Thermostats", Category: "Systems", Tags: []string{"feedback"}},
		{ID: "c3", Title: "Unrelated", Category: "Cooking", Tags: []string{"recipes"}},
	}

	items := RecommendFromHistory(history, pool, 10)

	got := make(map[string]float64, len(items))
	for _, item := range items {
		got[item.ID] = item.Score
	}
	if _, seen := got["v1"]; seen {
		t.Error("recommended an already-viewed item")
	}
	if _, seen := got["c3"]; seen {
		t.Error("recommended an item with no history overlap")
	}

	// c1: top category (0.5) + one top tag (0.2); c2: 0.5 + 0.2.
	if math.Abs(got["c1"]-0.7) > 1e-9 {
		t.Errorf("c1 score = %v, want 0.7", got["c1"])
	}
	if math.Abs(got["c2"]-0.7) > 1e-9 {
		t.Errorf("c2 score = %v, want 0.7", got["c2"])
	}
}

func TestRecommendFromHistory_EmptyHistory(t *testing.T) {
	pool := []content.Card{{ID: "c1", Category: "X"}}
	if items := RecommendFromHistory(nil, pool, 10); len(items) != 0 {
		t.Errorf("RecommendFromHistory(nil) = %v, want empty", items)
	}
}

func TestRecommendFromHistory_TopTagCutoff(t *testing.T) {
	// Six distinct tags; "rare" is the least frequent and falls outside
	// the top five.
	history := []content.ViewEvent{
		{ID: "v1", Tags: []string{"t1", "t2", "t3", "t4", "t5"}},
		{ID: "v2", Tags: []string{"t1", "t2", "t3", "t4", "t5"}},
		{ID: "v3", Tags: []string{"rare"}},
	}
	pool := []content.Card{
		{ID: "c1", Title: "Rare Only", Tags: []string{"rare"}},
	}

	if items := RecommendFromHistory(history, pool, 10); len(items) != 0 {
		t.Errorf("tag outside top-5 scored: %v", items)
	}
}

func TestAlsoLike_Exclusions(t *testing.T) {
	focal := content.Card{ID: "n1", Kind: content.KindNarrative, Category: "systems"}
	pool := []content.Card{
		{ID: "b1", Kind: content.KindNarrative, Title: "Bookmarked", Category: "systems"},
		{ID: "r1", Kind: content.KindNarrative, Title: "Recent", Category: "systems"},
		{ID: "c1", Kind: content.KindMentalModel, Title: "Fresh", Category: "systems"},
	}

	items := AlsoLike(focal, pool, []string{"b1"}, []string{"r1"}, 10)
	if len(items) != 1 {
		t.Fatalf("AlsoLike() = %d items, want 1", len(items))
	}
	if items[0].ID != "c1" {
		t.Errorf("AlsoLike() = %s, want c1", items[0].ID)
	}
}

func TestRank_LimitAndTies(t *testing.T) {
	focal := content.Card{ID: "f", Kind: content.KindNarrative, Category: "X"}
	pool := []content.Card{
		{ID: "c1", Kind: content.KindNarrative, Category: "X"},
		{ID: "c2", Kind: content.KindNarrative, Category: "X"},
		{ID: "c3", Kind: content.KindNarrative, Category: "X"},
	}

	items := AcrossKinds(focal, pool, 2)
	if len(items) != 2 {
		t.Fatalf("AcrossKinds() = %d items, want limit 2", len(items))
	}
	if items[0].ID != "c1" || items[1].ID != "c2" {
		t.Errorf("tie order = [%s %s], want pool order [c1 c2]", items[0].ID, items[1].ID)
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{"identical", []string{"a", "b"}, []string{"a", "b"}, 1.0},
		{"half overlap", []string{"a", "b", "c"}, []string{"b", "c", "d"}, 0.5},
		{"disjoint", []string{"a"}, []string{"b"}, 0},
		{"case-normalized", []string{"Bias"}, []string{"bias"}, 1.0},
		{"either empty", nil, []string{"a"}, 0},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jaccard(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("jaccard(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFrequency_Top(t *testing.T) {
	f := newFrequency()
	for _, v := range []string{"b", "a", "a", "c", "b", "a"} {
		f.add(v)
	}

	top := f.top(2)
	if !top["a"] || !top["b"] {
		t.Errorf("top(2) = %v, want a and b", top)
	}
	if top["c"] {
		t.Error("top(2) included c")
	}
}
