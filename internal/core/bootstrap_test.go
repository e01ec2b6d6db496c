package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lattice/internal/gateway"
)

func TestEnsure_FreshWorkspace(t *testing.T) {
	mock := &MockGateway{SchemaErr: gateway.ErrNotFound}
	b := NewSchemaBootstrapper(mock)

	result, err := b.Ensure(context.Background(), "ws-1")
	require.NoError(t, err)

	assert.Equal(t, StatusCreated, result.Status)
	require.NotNil(t, result.Schema)
	assert.Equal(t, int64(1), result.Schema.Version)

	require.Len(t, mock.UpsertedEntityTypes, 1)
	assert.Equal(t, EntityTypeKnowledgeEntry, mock.UpsertedEntityTypes[0].Name)
	assert.Len(t, mock.UpsertedEntityTypes[0].Properties, 8)

	names := make([]string, 0, len(mock.UpsertedEdgeTypes))
	for _, et := range mock.UpsertedEdgeTypes {
		names = append(names, et.Name)
	}
	assert.Equal(t, []string{
		"relates_to", "depends_on", "prerequisite_for",
		"example_of", "part_of", "supersedes",
	}, names)
}

func TestEnsure_AlreadyBootstrapped(t *testing.T) {
	mock := &MockGateway{
		Schema: &gateway.SchemaDefinition{
			WorkspaceID: "ws-1",
			Version:     3,
			EntityTypes: []gateway.EntityType{{Name: EntityTypeKnowledgeEntry}},
		},
	}
	b := NewSchemaBootstrapper(mock)

	result, err := b.Ensure(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyBootstrapped, result.Status)

	// The fast path is read-only.
	assert.Zero(t, mock.CallCount("UpsertSchema"))
}

func TestEnsure_Idempotent(t *testing.T) {
	mock := &MockGateway{SchemaErr: gateway.ErrNotFound}
	b := NewSchemaBootstrapper(mock)

	first, err := b.Ensure(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, first.Status)

	// Simulate the write having landed.
	mock.SchemaErr = nil
	mock.Schema = first.Schema

	second, err := b.Ensure(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyBootstrapped, second.Status)
	assert.Equal(t, 1, mock.CallCount("UpsertSchema"))
}

func TestEnsure_AdditiveMerge(t *testing.T) {
	mock := &MockGateway{
		Schema: &gateway.SchemaDefinition{
			WorkspaceID: "ws-1",
			Version:     1,
			EntityTypes: []gateway.EntityType{{Name: "Foo"}},
			EdgeTypes:   []gateway.EdgeType{{Name: "owns"}, {Name: "relates_to"}},
		},
	}
	b := NewSchemaBootstrapper(mock)

	result, err := b.Ensure(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Equal(t, StatusUpdated, result.Status)

	// Unrelated entity type survives, KnowledgeEntry is appended.
	require.Len(t, mock.UpsertedEntityTypes, 2)
	assert.Equal(t, "Foo", mock.UpsertedEntityTypes[0].Name)
	assert.Equal(t, EntityTypeKnowledgeEntry, mock.UpsertedEntityTypes[1].Name)

	// Edge merge keeps existing entries once and adds the missing ones.
	names := make(map[string]int)
	for _, et := range mock.UpsertedEdgeTypes {
		names[et.Name]++
	}
	assert.Equal(t, 1, names["owns"])
	assert.Equal(t, 1, names["relates_to"])
	assert.Equal(t, 1, names["supersedes"])
	assert.Len(t, mock.UpsertedEdgeTypes, 7)
}

func TestEnsure_GatewayErrorPropagates(t *testing.T) {
	boom := errors.New("gateway unavailable")
	mock := &MockGateway{SchemaErr: boom}
	b := NewSchemaBootstrapper(mock)

	_, err := b.Ensure(context.Background(), "ws-1")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, mock.CallCount("UpsertSchema"))
}
