package db

import (
	"fmt"

	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func NewQdrantClient(cfg types.Config) (qdrant.CollectionsClient, qdrant.PointsClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(cfg.Db.QdrantUrl, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to Qdrant: %w", err)
	}
	pointsClient := qdrant.NewPointsClient(conn)
	collectionsClient := qdrant.NewCollectionsClient(conn)

	return collectionsClient, pointsClient, conn, nil
}
