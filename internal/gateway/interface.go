package gateway

import "context"

// GraphGateway is the entity-relationship store the knowledge services are
// built on: workspace-scoped schemas, generic entities, typed edges, and
// depth-bounded traversal. Errors from the store propagate unchanged; the
// gateway never retries.
type GraphGateway interface {
	// GetSchema returns the workspace schema, or ErrNotFound when the
	// workspace has never been bootstrapped.
	GetSchema(ctx context.Context, workspaceID string) (*SchemaDefinition, error)

	// UpsertSchema replaces the workspace schema with the given type lists
	// (last write wins) and bumps its version.
	UpsertSchema(ctx context.Context, workspaceID string, entityTypes []EntityType, edgeTypes []EdgeType) (*SchemaDefinition, error)

	// CreateEntity stores a new entity and returns it with a generated ID.
	CreateEntity(ctx context.Context, workspaceID, entityType string, properties map[string]string) (*Entity, error)

	// GetEntity returns a single entity, or ErrNotFound.
	GetEntity(ctx context.Context, workspaceID, entityID string) (*Entity, error)

	// CreateEdge links two existing entities with a typed edge. Returns
	// ErrNotFound when either endpoint is missing.
	CreateEdge(ctx context.Context, workspaceID, fromID, toID, edgeType string) error

	// GetNeighbors returns the entities directly connected to entityID in
	// either direction. An empty result is valid.
	GetNeighbors(ctx context.Context, workspaceID, entityID string, opts NeighborOptions) ([]Entity, error)

	// Traverse walks outward from startID up to opts.MaxDepth hops,
	// optionally filtered by edge type. Results are ordered by hop distance,
	// exclude the start entity, and contain each reachable entity once.
	Traverse(ctx context.Context, workspaceID, startID string, opts TraverseOptions) ([]Entity, error)

	Close(ctx context.Context) error
}
