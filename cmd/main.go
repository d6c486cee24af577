package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/KevinFernandez21/nasa2025-backend/internal/config"
	"github.com/KevinFernandez21/nasa2025-backend/internal/db"
	"github.com/KevinFernandez21/nasa2025-backend/internal/llm"
	"github.com/KevinFernandez21/nasa2025-backend/internal/server"
	"github.com/KevinFernandez21/nasa2025-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/qdrant/go-client/qdrant"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configData := config.LoadConfig()

	neo4jDriver, err := db.NewNeo4jDriver(configData)
	if err != nil {
		logger.Fatal("Neo4j driver initialization failed", zap.Error(err))
	}
	defer neo4jDriver.Close(context.Background())

	collectionsClient, pointsClient, grpcConn, err := db.NewQdrantClient(configData)
	if err != nil {
		logger.Fatal("Qdrant client initialization failed", zap.Error(err))
	}
	defer grpcConn.Close()

	// bge-m3 vectors are 1024-dimensional. Create fails when the collection
	// already exists; that is not fatal.
	_, err = collectionsClient.Create(ctx, &qdrant.CreateCollection{
		CollectionName: configData.CollectionName,
		VectorsConfig: &qdrant.VectorsConfig{Config: &qdrant.VectorsConfig_Params{
			Params: &qdrant.VectorParams{Size: 1024, Distance: qdrant.Distance_Cosine},
		}},
	})
	if err != nil {
		logger.Info("Qdrant collection not created", zap.String("collection", configData.CollectionName), zap.Error(err))
	}

	embedder := llm.NewBGEClient(configData.Llm.HuggingToken)

	var gemini service.ContentGenerator
	if configData.Llm.GeminiApiKey != "" {
		gemini = llm.NewGeminiClient(configData.Llm.GeminiApiKey)
	}
	var chatClient service.ChatCompleter
	if configData.Llm.OpenAiApiKey != "" {
		chatClient = openai.NewClient(configData.Llm.OpenAiApiKey)
	}

	graphService := service.NewGraphService(neo4jDriver, configData.Db.Neo4jDatabase, configData.RequestTimeout, logger)
	searchService := service.NewSearchService(pointsClient, embedder, configData.CollectionName, logger)
	titleService := service.NewTitleService(gemini, chatClient, logger)
	insightService := service.NewInsightService(chatClient, logger)
	ingestService := service.NewIngestService(
		neo4jDriver,
		configData.Db.Neo4jDatabase,
		pointsClient,
		embedder,
		configData.CollectionName,
		configData.RequestTimeout,
		logger,
	)

	router := gin.Default()
	apiServer := server.New(graphService, searchService, titleService, insightService, ingestService, configData, logger)
	apiServer.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:    ":" + configData.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", configData.ServerPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
