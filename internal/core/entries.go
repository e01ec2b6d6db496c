package core

import (
	"context"
	"strings"

	"github.com/lorekeep/lattice/internal/core/model"
	"github.com/lorekeep/lattice/internal/gateway"
)

// EntryWithRelationships pairs an entry with the relationships derived from
// its direct neighbors.
type EntryWithRelationships struct {
	Entry         *model.KnowledgeEntry         `json:"entry"`
	Relationships []model.KnowledgeRelationship `json:"relationships"`
}

// KnowledgeEntryService validates and creates knowledge entries, and fetches
// single entries together with their derived relationships.
type KnowledgeEntryService struct {
	Gateway      gateway.GraphGateway
	Bootstrapper *SchemaBootstrapper
}

func NewKnowledgeEntryService(gw gateway.GraphGateway) *KnowledgeEntryService {
	return &KnowledgeEntryService{
		Gateway:      gw,
		Bootstrapper: NewSchemaBootstrapper(gw),
	}
}

// Create validates attrs, bootstraps the workspace schema, and stores the
// entry as a graph entity. Validation runs strictly before any gateway call.
func (s *KnowledgeEntryService) Create(ctx context.Context, workspaceID string, attrs model.EntryAttrs) (*model.KnowledgeEntry, error) {
	if err := validateAttrs(attrs); err != nil {
		return nil, err
	}

	// Bootstrap-before-write: a redundant schema read in the common case,
	// but it keeps first writes in a fresh workspace from failing.
	if _, err := s.Bootstrapper.Ensure(ctx, workspaceID); err != nil {
		return nil, err
	}

	props, err := ToEntityProperties(attrs)
	if err != nil {
		return nil, err
	}

	entity, err := s.Gateway.CreateEntity(ctx, workspaceID, EntityTypeKnowledgeEntry, props)
	if err != nil {
		return nil, err
	}

	return ToKnowledgeEntry(*entity)
}

// Get fetches one entry plus relationships derived from its neighbors. A
// neighborless entry yields an empty relationship list, not an error.
// Neighbor-derived relationships are always labeled relates_to regardless of
// the underlying edge type; see DESIGN.md before changing this.
func (s *KnowledgeEntryService) Get(ctx context.Context, workspaceID, entryID string) (*EntryWithRelationships, error) {
	entity, err := s.Gateway.GetEntity(ctx, workspaceID, entryID)
	if err != nil {
		return nil, err
	}

	neighbors, err := s.Gateway.GetNeighbors(ctx, workspaceID, entryID, gateway.NeighborOptions{})
	if err != nil {
		return nil, err
	}

	relationships := make([]model.KnowledgeRelationship, 0, len(neighbors))
	for _, neighbor := range neighbors {
		relationships = append(relationships, model.KnowledgeRelationship{
			FromID: entryID,
			ToID:   neighbor.ID,
			Type:   model.EdgeRelatesTo,
		})
	}

	entry, err := ToKnowledgeEntry(*entity)
	if err != nil {
		return nil, err
	}

	return &EntryWithRelationships{Entry: entry, Relationships: relationships}, nil
}

// Link creates a typed edge between two existing entries. The edge type must
// come from the fixed vocabulary.
func (s *KnowledgeEntryService) Link(ctx context.Context, workspaceID, fromID, toID, relType string) error {
	if !model.ValidEdgeType(relType) {
		return ErrInvalidRelationshipType
	}

	if _, err := s.Bootstrapper.Ensure(ctx, workspaceID); err != nil {
		return err
	}

	return s.Gateway.CreateEdge(ctx, workspaceID, fromID, toID, relType)
}

// validateAttrs applies the creation rules in fixed order: title, body,
// category, tags. The first failing rule wins.
func validateAttrs(attrs model.EntryAttrs) error {
	if strings.TrimSpace(attrs.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(attrs.Body) == "" {
		return ErrBodyRequired
	}
	if !attrs.Category.Valid() {
		return ErrInvalidCategory
	}
	if len(attrs.Tags) > model.MaxTags {
		return ErrTooManyTags
	}
	return nil
}
