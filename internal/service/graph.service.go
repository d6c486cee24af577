package service

import (
	"context"
	"time"

	"github.com/KevinFernandez21/nasa2025-backend/internal/graph"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// GraphService runs traversals against Neo4j and normalizes the results.
type GraphService struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
	logger   *zap.Logger
}

func NewGraphService(driver neo4j.DriverWithContext, database string, timeout time.Duration, logger *zap.Logger) *GraphService {
	return &GraphService{
		driver:   driver,
		database: database,
		timeout:  timeout,
		logger:   logger,
	}
}

// GetGraphData executes customQuery (or the default traversal bounded by
// limit, when customQuery is empty) and returns the deduplicated subgraph.
//
// Sessions are opened in read access mode: a custom query containing write
// clauses is rejected by the server and surfaces as a query-error. The query
// runs as a single auto-commit statement with no retries, so caller-supplied
// text is never replayed.
func (s *GraphService) GetGraphData(ctx context.Context, customQuery string, limit int) (*graph.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	query, params := graph.BuildQuery(customQuery, limit)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, graph.ClassifyError(err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, graph.ClassifyError(err)
	}

	normalized := graph.Normalize(records)
	s.logger.Info("graph data normalized",
		zap.Int("records", len(records)),
		zap.Int("nodes", normalized.Count.Nodes),
		zap.Int("relationships", normalized.Count.Relationships),
	)
	return normalized, nil
}
