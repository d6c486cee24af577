package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// IngestService stores a paper as a Neo4j node plus its embedding in Qdrant.
// The node carries the Qdrant point id so the two stores can be joined later.
type IngestService struct {
	driver     neo4j.DriverWithContext
	database   string
	points     qdrant.PointsClient
	embedder   Embedder
	collection string
	timeout    time.Duration
	logger     *zap.Logger
}

func NewIngestService(
	driver neo4j.DriverWithContext,
	database string,
	points qdrant.PointsClient,
	embedder Embedder,
	collection string,
	timeout time.Duration,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		driver:     driver,
		database:   database,
		points:     points,
		embedder:   embedder,
		collection: collection,
		timeout:    timeout,
		logger:     logger,
	}
}

func (s *IngestService) StorePaper(ctx context.Context, paper types.PaperRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pointID := uuid.New().String()

	textToEmbed := paper.Title
	if paper.Abstract != "" {
		textToEmbed += "\n" + paper.Abstract
	}
	embeddings, err := s.embedder.Embed(ctx, []string{textToEmbed})
	if err != nil {
		return "", fmt.Errorf("paper embedding failed: %w", err)
	}
	if len(embeddings) == 0 {
		return "", fmt.Errorf("paper embedding returned no vectors")
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
            CREATE (p:Paper {
                qdrantId: $qdrantId,
                title: $title,
                abstract: $abstract,
                link: $link,
                hasFullContent: $hasFullContent
            })
        `
		params := map[string]any{
			"qdrantId":       pointID,
			"title":          paper.Title,
			"abstract":       paper.Abstract,
			"link":           paper.Link,
			"hasFullContent": strings.TrimSpace(paper.Content) != "",
		}
		_, err := tx.Run(ctx, query, params)
		return nil, err
	})
	if err != nil {
		return "", fmt.Errorf("failed to create paper node: %w", err)
	}

	if err := s.upsertVector(ctx, pointID, paper, embeddings[0]); err != nil {
		return "", err
	}

	s.logger.Info("paper stored", zap.String("id", pointID), zap.String("title", paper.Title))
	return pointID, nil
}

func (s *IngestService) upsertVector(ctx context.Context, pointID string, paper types.PaperRequest, vector []float32) error {
	wait := true
	_, err := s.points.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Wait:           &wait,
		Points: []*qdrant.PointStruct{
			{
				Id:      &qdrant.PointId{PointIdOptions: &qdrant.PointId_Uuid{Uuid: pointID}},
				Vectors: &qdrant.Vectors{VectorsOptions: &qdrant.Vectors_Vector{Vector: &qdrant.Vector{Data: vector}}},
				Payload: map[string]*qdrant.Value{
					"title":          {Kind: &qdrant.Value_StringValue{StringValue: paper.Title}},
					"abstract":       {Kind: &qdrant.Value_StringValue{StringValue: paper.Abstract}},
					"content":        {Kind: &qdrant.Value_StringValue{StringValue: paper.Content}},
					"link":           {Kind: &qdrant.Value_StringValue{StringValue: paper.Link}},
					"hasFullContent": {Kind: &qdrant.Value_BoolValue{BoolValue: strings.TrimSpace(paper.Content) != ""}},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert paper vector (%s): %w", paper.Title, err)
	}
	return nil
}
