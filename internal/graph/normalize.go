package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Normalize flattens raw query records into a deduplicated Result.
//
// Every bound value of every record is classified by a type switch at this
// single boundary: neo4j.Node and neo4j.Relationship values are collected,
// anything else (scalars, paths, lists) is skipped. Nodes and relationships
// are deduplicated by their database-assigned int64 id in two separate seen
// sets, and appended in first-seen order across the record stream; later
// occurrences of an id never overwrite the first snapshot.
//
// Relationship start/end ids are passed through as-is even when the referenced
// node was not part of the result, so callers must tolerate dangling
// references.
func Normalize(records []*neo4j.Record) *Result {
	result := &Result{
		Nodes:         make([]Node, 0),
		Relationships: make([]Relationship, 0),
	}

	seenNodes := make(map[int64]struct{})
	seenRels := make(map[int64]struct{})

	for _, record := range records {
		for _, value := range record.Values {
			switch v := value.(type) {
			case neo4j.Node:
				if _, ok := seenNodes[v.Id]; ok {
					continue
				}
				seenNodes[v.Id] = struct{}{}
				result.Nodes = append(result.Nodes, Node{
					ID:         v.Id,
					Labels:     labelsOrEmpty(v.Labels),
					Properties: propsOrEmpty(v.Props),
				})
			case neo4j.Relationship:
				if _, ok := seenRels[v.Id]; ok {
					continue
				}
				seenRels[v.Id] = struct{}{}
				result.Relationships = append(result.Relationships, Relationship{
					ID:         v.Id,
					Type:       v.Type,
					StartNode:  v.StartId,
					EndNode:    v.EndId,
					Properties: propsOrEmpty(v.Props),
				})
			}
		}
	}

	result.Count = Count{
		Nodes:         len(result.Nodes),
		Relationships: len(result.Relationships),
	}
	return result
}

func labelsOrEmpty(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}

func propsOrEmpty(props map[string]any) map[string]any {
	if props == nil {
		return map[string]any{}
	}
	return props
}
