package model

// Category classifies a knowledge entry. The set is fixed: it is validated
// when an entry is created and not re-checked on read.
type Category string

const (
	CategoryHowTo           Category = "how_to"
	CategoryConcept         Category = "concept"
	CategoryReference       Category = "reference"
	CategoryTroubleshooting Category = "troubleshooting"
	CategoryDecision        Category = "decision"
	CategorySnippet         Category = "snippet"
)

var categories = []Category{
	CategoryHowTo,
	CategoryConcept,
	CategoryReference,
	CategoryTroubleshooting,
	CategoryDecision,
	CategorySnippet,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Categories returns the full fixed category set.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
