package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// MemgraphGateway implements GraphGateway against Memgraph over the bolt
// protocol. Schemas are stored as one :Schema node per workspace with the
// type lists JSON-encoded; entities are :Entity nodes with the property bag
// flattened onto the node; edges share a single :RELATES label with the
// logical edge type in a property, since Cypher cannot parameterize
// relationship labels.
type MemgraphGateway struct {
	Driver neo4j.DriverWithContext
}

func NewMemgraphGateway(uri, username, password string) (*MemgraphGateway, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to Memgraph")
	return &MemgraphGateway{Driver: driver}, nil
}

func (g *MemgraphGateway) Close(ctx context.Context) error {
	return g.Driver.Close(ctx)
}

func (g *MemgraphGateway) executeQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, g.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// BuildIndices creates the lookup indices the gateway queries rely on.
// Failures are logged and skipped since the index may already exist.
func (g *MemgraphGateway) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Entity(id);",
		"CREATE INDEX ON :Entity(workspace_id);",
		"CREATE INDEX ON :Schema(workspace_id);",
	}

	for _, q := range queries {
		if _, err := g.executeQuery(ctx, q, nil); err != nil {
			log.Printf("Warning: failed to create index '%s': %v", q, err)
		}
	}

	return nil
}

func (g *MemgraphGateway) GetSchema(ctx context.Context, workspaceID string) (*SchemaDefinition, error) {
	result, err := g.executeQuery(ctx, getSchemaQuery, map[string]interface{}{
		"workspace_id": workspaceID,
	})
	if err != nil {
		return nil, err
	}

	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}

	return schemaFromRecord(result.Records[0], workspaceID)
}

func (g *MemgraphGateway) UpsertSchema(ctx context.Context, workspaceID string, entityTypes []EntityType, edgeTypes []EdgeType) (*SchemaDefinition, error) {
	entityJSON, err := json.Marshal(entityTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entity types: %w", err)
	}
	edgeJSON, err := json.Marshal(edgeTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode edge types: %w", err)
	}

	result, err := g.executeQuery(ctx, upsertSchemaQuery, map[string]interface{}{
		"workspace_id": workspaceID,
		"id":           uuid.New().String(),
		"entity_types": string(entityJSON),
		"edge_types":   string(edgeJSON),
	})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("schema upsert returned no record for workspace %s", workspaceID)
	}

	rec := result.Records[0]
	id, _ := rec.Get("id")
	version, _ := rec.Get("version")

	schema := &SchemaDefinition{
		WorkspaceID: workspaceID,
		EntityTypes: entityTypes,
		EdgeTypes:   edgeTypes,
	}
	if s, ok := id.(string); ok {
		schema.ID = s
	}
	if v, ok := version.(int64); ok {
		schema.Version = v
	}

	return schema, nil
}

func (g *MemgraphGateway) CreateEntity(ctx context.Context, workspaceID, entityType string, properties map[string]string) (*Entity, error) {
	entity := &Entity{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Type:        entityType,
		Properties:  properties,
	}

	props := make(map[string]interface{}, len(properties))
	for k, v := range properties {
		props[k] = v
	}

	_, err := g.executeQuery(ctx, createEntityQuery, map[string]interface{}{
		"id":           entity.ID,
		"workspace_id": workspaceID,
		"type":         entityType,
		"properties":   props,
	})
	if err != nil {
		return nil, err
	}

	return entity, nil
}

func (g *MemgraphGateway) GetEntity(ctx context.Context, workspaceID, entityID string) (*Entity, error) {
	result, err := g.executeQuery(ctx, getEntityQuery, map[string]interface{}{
		"id":           entityID,
		"workspace_id": workspaceID,
	})
	if err != nil {
		return nil, err
	}

	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}

	props, _ := result.Records[0].Get("props")
	return entityFromProps(props)
}

func (g *MemgraphGateway) CreateEdge(ctx context.Context, workspaceID, fromID, toID, edgeType string) error {
	result, err := g.executeQuery(ctx, createEdgeQuery, map[string]interface{}{
		"workspace_id": workspaceID,
		"from_id":      fromID,
		"to_id":        toID,
		"type":         edgeType,
		"id":           uuid.New().String(),
		"created_at":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	// MERGE produced no row only when one of the MATCHed endpoints is missing.
	if len(result.Records) == 0 {
		return ErrNotFound
	}

	return nil
}

func (g *MemgraphGateway) GetNeighbors(ctx context.Context, workspaceID, entityID string, opts NeighborOptions) ([]Entity, error) {
	result, err := g.executeQuery(ctx, getNeighborsQuery, map[string]interface{}{
		"id":           entityID,
		"workspace_id": workspaceID,
		"edge_type":    opts.EdgeType,
	})
	if err != nil {
		return nil, err
	}

	return entitiesFromRecords(result.Records)
}

func (g *MemgraphGateway) Traverse(ctx context.Context, workspaceID, startID string, opts TraverseOptions) ([]Entity, error) {
	query := fmt.Sprintf(traverseQueryFmt, opts.MaxDepth)

	result, err := g.executeQuery(ctx, query, map[string]interface{}{
		"id":           startID,
		"workspace_id": workspaceID,
		"edge_type":    opts.EdgeType,
	})
	if err != nil {
		return nil, err
	}

	return entitiesFromRecords(result.Records)
}

func entitiesFromRecords(records []*neo4j.Record) ([]Entity, error) {
	entities := make([]Entity, 0, len(records))
	for _, rec := range records {
		props, _ := rec.Get("props")
		entity, err := entityFromProps(props)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// entityFromProps rebuilds an Entity from a node's flattened property map,
// splitting off the reserved id/workspace_id/type keys.
func entityFromProps(props interface{}) (*Entity, error) {
	m, ok := props.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected node properties type %T", props)
	}

	entity := &Entity{Properties: make(map[string]string)}
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			continue
		}
		switch k {
		case "id":
			entity.ID = s
		case "workspace_id":
			entity.WorkspaceID = s
		case "type":
			entity.Type = s
		default:
			entity.Properties[k] = s
		}
	}

	return entity, nil
}

func schemaFromRecord(rec *neo4j.Record, workspaceID string) (*SchemaDefinition, error) {
	schema := &SchemaDefinition{WorkspaceID: workspaceID}

	if id, ok := rec.Get("id"); ok {
		if s, ok := id.(string); ok {
			schema.ID = s
		}
	}
	if version, ok := rec.Get("version"); ok {
		if v, ok := version.(int64); ok {
			schema.Version = v
		}
	}

	entityJSON, _ := rec.Get("entity_types")
	if s, ok := entityJSON.(string); ok && s != "" {
		if err := json.Unmarshal([]byte(s), &schema.EntityTypes); err != nil {
			return nil, fmt.Errorf("failed to decode stored entity types: %w", err)
		}
	}

	edgeJSON, _ := rec.Get("edge_types")
	if s, ok := edgeJSON.(string); ok && s != "" {
		if err := json.Unmarshal([]byte(s), &schema.EdgeTypes); err != nil {
			return nil, fmt.Errorf("failed to decode stored edge types: %w", err)
		}
	}

	return schema, nil
}
