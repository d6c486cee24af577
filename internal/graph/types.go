package graph

// Node is a deduplicated graph node keyed by its database-assigned id.
type Node struct {
	ID         int64          `json:"id"`
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
}

// Relationship is a directed typed edge. Its id lives in a separate identity
// space from node ids, so a node and a relationship may share a numeric id.
type Relationship struct {
	ID         int64          `json:"id"`
	Type       string         `json:"type"`
	StartNode  int64          `json:"start_node"`
	EndNode    int64          `json:"end_node"`
	Properties map[string]any `json:"properties"`
}

type Count struct {
	Nodes         int `json:"nodes"`
	Relationships int `json:"relationships"`
}

// Result holds the normalized subgraph. Count always equals the lengths of
// the two sequences; both sequences serialize as [] when empty, never null.
type Result struct {
	Nodes         []Node         `json:"nodes"`
	Relationships []Relationship `json:"relationships"`
	Count         Count          `json:"count"`
}
