package graph

// DefaultLimit is applied when a request does not carry an explicit limit.
const DefaultLimit = 100

// defaultTraversalQuery returns every node with an outgoing relationship as a
// (source, relationship, target) triple, bounded by the $limit parameter.
const defaultTraversalQuery = `
MATCH (n)-[r]->(m)
RETURN n, r, m
LIMIT $limit
`

// BuildQuery produces the Cypher text and parameter map to execute. A custom
// query passes through verbatim with no parameters; the default traversal
// binds the limit as a parameter so it is never spliced into the query text.
func BuildQuery(custom string, limit int) (string, map[string]any) {
	if custom != "" {
		return custom, map[string]any{}
	}
	return defaultTraversalQuery, map[string]any{"limit": limit}
}
