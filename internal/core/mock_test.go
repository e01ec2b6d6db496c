package core

import (
	"context"

	"github.com/lorekeep/lattice/internal/gateway"
)

// MockGateway records every call and its arguments so tests can assert on
// exactly what reached the store.
type MockGateway struct {
	Schema          *gateway.SchemaDefinition
	SchemaErr       error
	Entity          *gateway.Entity
	EntityErr       error
	Neighbors       []gateway.Entity
	NeighborsErr    error
	TraverseResult  []gateway.Entity
	TraverseErr     error
	CreateEntityErr error
	CreateEdgeErr   error
	UpsertErr       error

	Calls []string

	UpsertedEntityTypes []gateway.EntityType
	UpsertedEdgeTypes   []gateway.EdgeType
	CreatedType         string
	CreatedProps        map[string]string
	LastNeighborOpts    gateway.NeighborOptions
	LastTraverseOpts    gateway.TraverseOptions
	LastEdgeFrom        string
	LastEdgeTo          string
	LastEdgeType        string
}

func (m *MockGateway) GetSchema(ctx context.Context, workspaceID string) (*gateway.SchemaDefinition, error) {
	m.Calls = append(m.Calls, "GetSchema")
	if m.SchemaErr != nil {
		return nil, m.SchemaErr
	}
	return m.Schema, nil
}

func (m *MockGateway) UpsertSchema(ctx context.Context, workspaceID string, entityTypes []gateway.EntityType, edgeTypes []gateway.EdgeType) (*gateway.SchemaDefinition, error) {
	m.Calls = append(m.Calls, "UpsertSchema")
	m.UpsertedEntityTypes = entityTypes
	m.UpsertedEdgeTypes = edgeTypes
	if m.UpsertErr != nil {
		return nil, m.UpsertErr
	}

	version := int64(1)
	if m.Schema != nil {
		version = m.Schema.Version + 1
	}
	return &gateway.SchemaDefinition{
		ID:          "schema-1",
		WorkspaceID: workspaceID,
		Version:     version,
		EntityTypes: entityTypes,
		EdgeTypes:   edgeTypes,
	}, nil
}

func (m *MockGateway) CreateEntity(ctx context.Context, workspaceID, entityType string, properties map[string]string) (*gateway.Entity, error) {
	m.Calls = append(m.Calls, "CreateEntity")
	m.CreatedType = entityType
	m.CreatedProps = properties
	if m.CreateEntityErr != nil {
		return nil, m.CreateEntityErr
	}
	return &gateway.Entity{
		ID:          "entity-1",
		WorkspaceID: workspaceID,
		Type:        entityType,
		Properties:  properties,
	}, nil
}

func (m *MockGateway) GetEntity(ctx context.Context, workspaceID, entityID string) (*gateway.Entity, error) {
	m.Calls = append(m.Calls, "GetEntity")
	if m.EntityErr != nil {
		return nil, m.EntityErr
	}
	return m.Entity, nil
}

func (m *MockGateway) CreateEdge(ctx context.Context, workspaceID, fromID, toID, edgeType string) error {
	m.Calls = append(m.Calls, "CreateEdge")
	m.LastEdgeFrom = fromID
	m.LastEdgeTo = toID
	m.LastEdgeType = edgeType
	return m.CreateEdgeErr
}

func (m *MockGateway) GetNeighbors(ctx context.Context, workspaceID, entityID string, opts gateway.NeighborOptions) ([]gateway.Entity, error) {
	m.Calls = append(m.Calls, "GetNeighbors")
	m.LastNeighborOpts = opts
	if m.NeighborsErr != nil {
		return nil, m.NeighborsErr
	}
	return m.Neighbors, nil
}

func (m *MockGateway) Traverse(ctx context.Context, workspaceID, startID string, opts gateway.TraverseOptions) ([]gateway.Entity, error) {
	m.Calls = append(m.Calls, "Traverse")
	m.LastTraverseOpts = opts
	if m.TraverseErr != nil {
		return nil, m.TraverseErr
	}
	return m.TraverseResult, nil
}

func (m *MockGateway) Close(ctx context.Context) error {
	return nil
}

func (m *MockGateway) CallCount(name string) int {
	n := 0
	for _, call := range m.Calls {
		if call == name {
			n++
		}
	}
	return n
}
