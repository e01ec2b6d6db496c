//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lattice/internal/core"
	"github.com/lorekeep/lattice/internal/core/model"
	"github.com/lorekeep/lattice/internal/gateway"
)

// Exercises the full stack against a live Memgraph: bootstrap, create, link,
// fetch with relationships, and depth-bounded traversal.
func TestKnowledgeGraphFlow(t *testing.T) {
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("MEMGRAPH_URI")
	if uri == "" {
		t.Skip("Skipping integration test: MEMGRAPH_URI not set")
	}

	gw, err := gateway.NewMemgraphGateway(uri, os.Getenv("MEMGRAPH_USER"), os.Getenv("MEMGRAPH_PASSWORD"))
	require.NoError(t, err)
	defer gw.Close(context.Background())

	ctx := context.Background()
	require.NoError(t, gw.BuildIndices(ctx))

	// Fresh workspace per run so reruns do not interfere.
	workspaceID := "it-" + uuid.New().String()

	bootstrapper := core.NewSchemaBootstrapper(gw)
	entries := core.NewKnowledgeEntryService(gw)
	traversal := core.NewGraphTraversalService(gw)

	first, err := bootstrapper.Ensure(ctx, workspaceID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCreated, first.Status)

	second, err := bootstrapper.Ensure(ctx, workspaceID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusAlreadyBootstrapped, second.Status)

	root, err := entries.Create(ctx, workspaceID, model.EntryAttrs{
		Title:    "New Entry",
		Body:     "Content here",
		Category: model.CategoryHowTo,
		Tags:     []string{"tag1"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, root.ID)

	// Fresh entry has no relationships.
	fetched, err := entries.Get(ctx, workspaceID, root.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Entry", fetched.Entry.Title)
	assert.Equal(t, []string{"tag1"}, fetched.Entry.Tags)
	assert.Empty(t, fetched.Relationships)

	child, err := entries.Create(ctx, workspaceID, model.EntryAttrs{
		Title:    "Child Entry",
		Body:     "More content",
		Category: model.CategoryConcept,
	})
	require.NoError(t, err)

	require.NoError(t, entries.Link(ctx, workspaceID, root.ID, child.ID, model.EdgeDependsOn))

	// The neighbor shows up as a derived relates_to relationship.
	fetched, err = entries.Get(ctx, workspaceID, root.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Relationships, 1)
	assert.Equal(t, child.ID, fetched.Relationships[0].ToID)
	assert.Equal(t, model.EdgeRelatesTo, fetched.Relationships[0].Type)

	reachable, err := traversal.Traverse(ctx, workspaceID, core.TraverseParams{StartID: root.ID})
	require.NoError(t, err)
	require.Len(t, reachable, 1)
	assert.Equal(t, "Child Entry", reachable[0].Title)

	// Edge-type filter excludes the depends_on link.
	filtered, err := traversal.Traverse(ctx, workspaceID, core.TraverseParams{
		StartID:          root.ID,
		RelationshipType: model.EdgeSupersedes,
	})
	require.NoError(t, err)
	assert.Empty(t, filtered)

	// Unknown start propagates not_found.
	_, err = traversal.Traverse(ctx, workspaceID, core.TraverseParams{StartID: uuid.New().String()})
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}
