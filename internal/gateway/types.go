package gateway

import "errors"

// ErrNotFound is returned when a schema, entity, or edge endpoint does not
// exist in the workspace.
var ErrNotFound = errors.New("not_found")

// PropertyDef describes a single typed property of an entity type.
type PropertyDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// EntityType is a named entity definition inside a workspace schema.
type EntityType struct {
	Name       string        `json:"name"`
	Properties []PropertyDef `json:"properties"`
}

// EdgeType is a named relationship definition inside a workspace schema.
type EdgeType struct {
	Name string `json:"name"`
}

// SchemaDefinition is the per-workspace, versioned graph schema. It is owned
// by the gateway and only mutated through UpsertSchema.
type SchemaDefinition struct {
	ID          string       `json:"id"`
	WorkspaceID string       `json:"workspace_id"`
	Version     int64        `json:"version"`
	EntityTypes []EntityType `json:"entity_types"`
	EdgeTypes   []EdgeType   `json:"edge_types"`
}

// HasEntityType reports whether the schema already defines an entity type
// with the given name.
func (s *SchemaDefinition) HasEntityType(name string) bool {
	for _, et := range s.EntityTypes {
		if et.Name == name {
			return true
		}
	}
	return false
}

// Entity is the generic graph record: a type tag plus a string-keyed
// property bag. List-valued domain fields are stored as JSON array strings
// inside Properties.
type Entity struct {
	ID          string            `json:"id"`
	WorkspaceID string            `json:"workspace_id"`
	Type        string            `json:"type"`
	Properties  map[string]string `json:"properties"`
}

// NeighborOptions filters a GetNeighbors call. An empty EdgeType matches
// every edge.
type NeighborOptions struct {
	EdgeType string
}

// TraverseOptions bounds a Traverse call. MaxDepth must already be clamped
// by the caller; an empty EdgeType matches every edge.
type TraverseOptions struct {
	MaxDepth int
	EdgeType string
}
