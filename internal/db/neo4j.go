package db

import (
	"fmt"

	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

func NewNeo4jDriver(cfg types.Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.Db.Neo4jUri, neo4j.BasicAuth(cfg.Db.Neo4jUser, cfg.Db.Neo4jPass, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}
	return driver, nil
}
