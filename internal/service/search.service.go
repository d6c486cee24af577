package service

import (
	"context"
	"fmt"

	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
	"github.com/KevinFernandez21/nasa2025-backend/pkg/utils"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

const (
	abstractPreviewChars = 300
	contentPreviewChars  = 500
)

// Embedder turns text into vectors for similarity search.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// SearchService finds papers similar to a free-text query via Qdrant.
type SearchService struct {
	points     qdrant.PointsClient
	embedder   Embedder
	collection string
	logger     *zap.Logger
}

func NewSearchService(points qdrant.PointsClient, embedder Embedder, collection string, logger *zap.Logger) *SearchService {
	return &SearchService{
		points:     points,
		embedder:   embedder,
		collection: collection,
		logger:     logger,
	}
}

func (s *SearchService) SearchDocuments(ctx context.Context, query string, limit uint64, onlyFullContent bool) ([]types.DocumentHit, error) {
	embeddings, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("query embedding failed: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("query embedding returned no vectors")
	}

	var filter *qdrant.Filter
	if onlyFullContent {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				{
					ConditionOneOf: &qdrant.Condition_Field{
						Field: &qdrant.FieldCondition{
							Key:   "hasFullContent",
							Match: &qdrant.Match{MatchValue: &qdrant.Match_Boolean{Boolean: true}},
						},
					},
				},
			},
		}
	}

	searchResult, err := s.points.Search(ctx, &qdrant.SearchPoints{
		CollectionName: s.collection,
		Vector:         embeddings[0],
		Limit:          limit,
		Filter:         filter,
		WithPayload:    &qdrant.WithPayloadSelector{SelectorOptions: &qdrant.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("Qdrant vector search failed: %w", err)
	}

	hits := make([]types.DocumentHit, 0, len(searchResult.GetResult()))
	for _, point := range searchResult.GetResult() {
		payload := point.GetPayload()
		abstract := payload["abstract"].GetStringValue()
		content := payload["content"].GetStringValue()
		certainty := float64(point.GetScore())

		hits = append(hits, types.DocumentHit{
			Title:          payload["title"].GetStringValue(),
			Abstract:       utils.MakePreview(abstract, abstractPreviewChars),
			ContentPreview: utils.MakePreview(content, contentPreviewChars),
			Link:           payload["link"].GetStringValue(),
			Certainty:      &certainty,
			FullAbstract:   abstract,
			FullContent:    content,
		})
	}

	s.logger.Info("semantic search completed", zap.String("query", query), zap.Int("hits", len(hits)))
	return hits, nil
}
