package core

import (
	"context"

	"github.com/lorekeep/lattice/internal/core/model"
	"github.com/lorekeep/lattice/internal/gateway"
)

// Depth policy for traversals. Out-of-range depths are clamped, not
// rejected: the bound keeps traversal cost in check without erroring on
// overly enthusiastic callers.
const (
	DefaultTraversalDepth = 2
	MinTraversalDepth     = 1
	MaxTraversalDepth     = 5
)

// TraverseParams are the caller-supplied traversal parameters. Depth is
// optional (nil means DefaultTraversalDepth); RelationshipType is optional
// (empty means no edge filter).
type TraverseParams struct {
	StartID          string `json:"start_id"`
	RelationshipType string `json:"relationship_type,omitempty"`
	Depth            *int   `json:"depth,omitempty"`
}

// GraphTraversalService walks the knowledge graph outward from a starting
// entry, bounded by depth and optionally filtered by edge type.
type GraphTraversalService struct {
	Gateway gateway.GraphGateway
}

func NewGraphTraversalService(gw gateway.GraphGateway) *GraphTraversalService {
	return &GraphTraversalService{Gateway: gw}
}

// Traverse validates params, verifies the starting entry exists, delegates
// the walk to the gateway, and decodes the results. Entries come back in the
// gateway's order (breadth-first by hop distance); no re-sorting here.
func (s *GraphTraversalService) Traverse(ctx context.Context, workspaceID string, params TraverseParams) ([]model.KnowledgeEntry, error) {
	if params.StartID == "" {
		return nil, ErrMissingStartID
	}

	if params.RelationshipType != "" && !model.ValidEdgeType(params.RelationshipType) {
		return nil, ErrInvalidRelationshipType
	}

	depth := clampDepth(params.Depth)

	// Surface not_found for the start entry before traversing, since an
	// unknown start and an entry with no neighbors must be distinguishable.
	if _, err := s.Gateway.GetEntity(ctx, workspaceID, params.StartID); err != nil {
		return nil, err
	}

	entities, err := s.Gateway.Traverse(ctx, workspaceID, params.StartID, gateway.TraverseOptions{
		MaxDepth: depth,
		EdgeType: params.RelationshipType,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]model.KnowledgeEntry, 0, len(entities))
	for _, entity := range entities {
		entry, err := ToKnowledgeEntry(entity)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

func clampDepth(depth *int) int {
	if depth == nil {
		return DefaultTraversalDepth
	}
	switch {
	case *depth < MinTraversalDepth:
		return MinTraversalDepth
	case *depth > MaxTraversalDepth:
		return MaxTraversalDepth
	}
	return *depth
}
