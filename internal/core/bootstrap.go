package core

import (
	"context"
	"errors"

	"github.com/lorekeep/lattice/internal/core/model"
	"github.com/lorekeep/lattice/internal/gateway"
)

// BootstrapStatus describes what Ensure had to do.
type BootstrapStatus string

const (
	StatusAlreadyBootstrapped BootstrapStatus = "already_bootstrapped"
	StatusUpdated             BootstrapStatus = "updated"
	StatusCreated             BootstrapStatus = "created"
)

// BootstrapResult is the outcome of an Ensure call. Schema is nil when the
// workspace was already bootstrapped (the fast path issues no write and does
// not re-read the schema).
type BootstrapResult struct {
	Status BootstrapStatus
	Schema *gateway.SchemaDefinition
}

// SchemaBootstrapper idempotently ensures a workspace schema supports
// knowledge-entry storage. It never caches schema state across calls and is
// cheap enough to run before every write.
type SchemaBootstrapper struct {
	Gateway gateway.GraphGateway
}

func NewSchemaBootstrapper(gw gateway.GraphGateway) *SchemaBootstrapper {
	return &SchemaBootstrapper{Gateway: gw}
}

// Ensure checks the workspace schema and adds the KnowledgeEntry entity type
// (and, for a fresh workspace, the edge-type vocabulary) when missing.
// Unrelated pre-existing types are preserved verbatim: the merge is additive,
// never a destructive overwrite. Gateway errors propagate unchanged.
func (b *SchemaBootstrapper) Ensure(ctx context.Context, workspaceID string) (*BootstrapResult, error) {
	schema, err := b.Gateway.GetSchema(ctx, workspaceID)
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		created, err := b.Gateway.UpsertSchema(ctx, workspaceID,
			[]gateway.EntityType{knowledgeEntryType()}, requiredEdgeTypes())
		if err != nil {
			return nil, err
		}
		return &BootstrapResult{Status: StatusCreated, Schema: created}, nil

	case err != nil:
		return nil, err
	}

	if schema.HasEntityType(EntityTypeKnowledgeEntry) {
		return &BootstrapResult{Status: StatusAlreadyBootstrapped}, nil
	}

	entityTypes := append(schema.EntityTypes, knowledgeEntryType())
	edgeTypes := mergeEdgeTypes(schema.EdgeTypes)

	updated, err := b.Gateway.UpsertSchema(ctx, workspaceID, entityTypes, edgeTypes)
	if err != nil {
		return nil, err
	}
	return &BootstrapResult{Status: StatusUpdated, Schema: updated}, nil
}

// knowledgeEntryType is the full KnowledgeEntry entity-type definition. It is
// deterministic so concurrent bootstraps converge to an equivalent schema.
func knowledgeEntryType() gateway.EntityType {
	return gateway.EntityType{
		Name: EntityTypeKnowledgeEntry,
		Properties: []gateway.PropertyDef{
			{Name: propTitle, Type: "string"},
			{Name: propBody, Type: "string"},
			{Name: propCategory, Type: "string"},
			{Name: propTags, Type: "json"},
			{Name: propCodeSnippets, Type: "json"},
			{Name: propFilePaths, Type: "json"},
			{Name: propExternalLinks, Type: "json"},
			{Name: propLastVerifiedAt, Type: "datetime"},
		},
	}
}

func requiredEdgeTypes() []gateway.EdgeType {
	names := model.EdgeTypes()
	out := make([]gateway.EdgeType, len(names))
	for i, name := range names {
		out[i] = gateway.EdgeType{Name: name}
	}
	return out
}

// mergeEdgeTypes unions the required edge types into the existing list,
// keeping existing entries in place.
func mergeEdgeTypes(existing []gateway.EdgeType) []gateway.EdgeType {
	present := make(map[string]bool, len(existing))
	for _, et := range existing {
		present[et.Name] = true
	}

	merged := append([]gateway.EdgeType{}, existing...)
	for _, required := range requiredEdgeTypes() {
		if !present[required.Name] {
			merged = append(merged, required)
		}
	}
	return merged
}
