package gateway

const (
	getSchemaQuery = `
		MATCH (s:Schema {workspace_id: $workspace_id})
		RETURN s.id AS id,
			s.version AS version,
			s.entity_types AS entity_types,
			s.edge_types AS edge_types
	`

	upsertSchemaQuery = `
		MERGE (s:Schema {workspace_id: $workspace_id})
		ON CREATE SET s.id = $id, s.version = 1
		ON MATCH SET s.version = s.version + 1
		SET s.entity_types = $entity_types,
			s.edge_types = $edge_types
		RETURN s.id AS id, s.version AS version
	`

	createEntityQuery = `
		CREATE (n:Entity {id: $id, workspace_id: $workspace_id, type: $type})
		SET n += $properties
		RETURN n.id AS id
	`

	getEntityQuery = `
		MATCH (n:Entity {id: $id, workspace_id: $workspace_id})
		RETURN properties(n) AS props
	`

	createEdgeQuery = `
		MATCH (a:Entity {id: $from_id, workspace_id: $workspace_id})
		MATCH (b:Entity {id: $to_id, workspace_id: $workspace_id})
		MERGE (a)-[e:RELATES {type: $type}]->(b)
		ON CREATE SET e.id = $id, e.created_at = $created_at
		RETURN e.id AS id
	`

	getNeighborsQuery = `
		MATCH (n:Entity {id: $id, workspace_id: $workspace_id})-[e:RELATES]-(m:Entity)
		WHERE $edge_type = "" OR e.type = $edge_type
		RETURN DISTINCT properties(m) AS props
	`

	// Cypher cannot parameterize variable-length bounds, so the (already
	// clamped) max depth is formatted into the pattern by the caller.
	traverseQueryFmt = `
		MATCH path = (start:Entity {id: $id, workspace_id: $workspace_id})-[:RELATES*1..%d]->(n:Entity)
		WHERE n.id <> $id
			AND all(r IN relationships(path) WHERE $edge_type = "" OR r.type = $edge_type)
		WITH n, min(length(path)) AS distance
		RETURN properties(n) AS props
		ORDER BY distance
	`
)
