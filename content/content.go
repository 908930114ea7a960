package content

import "strings"

// Kind identifies the shape of a content record.
type Kind string

const (
	// KindNarrative is a long-form narrative with domains and evidence quality.
	KindNarrative Kind = "narrative"

	// KindMentalModel is a mental model with a transformation and complexity.
	KindMentalModel Kind = "mentalModel"
)

// Record is the capability the search engine depends on: a stable identity
// plus named text fields. Multi-valued fields (tags, domains) return one
// element per value; absent fields return nil. Implementations must be
// immutable for the duration of a search call.
type Record interface {
	// ID returns the stable record identifier.
	ID() string

	// Kind returns the record's content kind.
	Kind() Kind

	// Title returns the display title.
	Title() string

	// Field returns the named field's values, or nil if the field is
	// absent or empty on this record.
	Field(name string) []string
}

// Field names recognized by the built-in record kinds.
const (
	FieldTitle       = "title"
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldTags        = "tags"
	FieldDomains     = "domains"
)

// Narrative is a narrative-shaped content record.
type Narrative struct {
	NarrativeID     string
	NarrativeTitle  string
	Summary         string
	Category        string
	Tags            []string
	Domains         []string
	EvidenceQuality string
}

// ID implements Record.
func (n Narrative) ID() string { return n.NarrativeID }

// Kind implements Record.
func (n Narrative) Kind() Kind { return KindNarrative }

// Title implements Record.
func (n Narrative) Title() string { return n.NarrativeTitle }

// Field implements Record.
func (n Narrative) Field(name string) []string {
	switch name {
	case FieldTitle:
		return singleton(n.NarrativeTitle)
	case FieldSummary:
		return singleton(n.Summary)
	case FieldCategory:
		return singleton(n.Category)
	case FieldTags:
		return compact(n.Tags)
	case FieldDomains:
		return compact(n.Domains)
	default:
		return nil
	}
}

// Card returns the cross-kind projection of the narrative.
func (n Narrative) Card() Card {
	return Card{
		ID:       n.NarrativeID,
		Kind:     KindNarrative,
		Title:    n.NarrativeTitle,
		Category: n.Category,
		Tags:     n.Tags,
	}
}

// MentalModel is a mental-model-shaped content record. Transformation plays
// the role a category plays for narratives.
type MentalModel struct {
	ModelID        string
	Name           string
	Description    string
	Transformation string
	Tags           []string
	Complexity     string
}

// ID implements Record.
func (m MentalModel) ID() string { return m.ModelID }

// Kind implements Record.
func (m MentalModel) Kind() Kind { return KindMentalModel }

// Title implements Record.
func (m MentalModel) Title() string { return m.Name }

// Field implements Record.
func (m MentalModel) Field(name string) []string {
	switch name {
	case FieldTitle:
		return singleton(m.Name)
	case FieldDescription, FieldSummary:
		return singleton(m.Description)
	case FieldCategory:
		return singleton(m.Transformation)
	case FieldTags:
		return compact(m.Tags)
	default:
		return nil
	}
}

// Card returns the cross-kind projection of the model.
func (m MentalModel) Card() Card {
	return Card{
		ID:       m.ModelID,
		Kind:     KindMentalModel,
		Title:    m.Name,
		Category: m.Transformation,
		Tags:     m.Tags,
	}
}

// Card is the projection shared by all content kinds. Cross-kind scoring
// operates only on these fields, never on kind-specific structure.
type Card struct {
	ID       string
	Kind     Kind
	Title    string
	Category string
	Tags     []string
}

// ViewEvent records that a piece of content was viewed. Tags and Category
// are optional; history-based recommendation tolerates their absence.
type ViewEvent struct {
	Kind     Kind
	ID       string
	Tags     []string
	Category string
}

func singleton(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []string{s}
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
