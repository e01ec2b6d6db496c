package model

// Edge-type vocabulary for knowledge relationships.
const (
	EdgeRelatesTo       = "relates_to"
	EdgeDependsOn       = "depends_on"
	EdgePrerequisiteFor = "prerequisite_for"
	EdgeExampleOf       = "example_of"
	EdgePartOf          = "part_of"
	EdgeSupersedes      = "supersedes"
)

var edgeTypes = []string{
	EdgeRelatesTo,
	EdgeDependsOn,
	EdgePrerequisiteFor,
	EdgeExampleOf,
	EdgePartOf,
	EdgeSupersedes,
}

// EdgeTypes returns the fixed edge-type vocabulary.
func EdgeTypes() []string {
	out := make([]string, len(edgeTypes))
	copy(out, edgeTypes)
	return out
}

// ValidEdgeType reports whether name is part of the fixed vocabulary.
func ValidEdgeType(name string) bool {
	for _, known := range edgeTypes {
		if name == known {
			return true
		}
	}
	return false
}

// KnowledgeRelationship is derived on the fly from an entry and one of its
// neighbors; relationships are never stored in this form.
type KnowledgeRelationship struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
	Type   string `json:"type"`
}
