package config

import (
	"os"
	"strconv"
	"time"

	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
)

const defaultRequestTimeout = 30 * time.Second

func LoadConfig() types.Config {
	dbConfig := types.DbConfig{
		Neo4jUri:      os.Getenv("NEO4J_URI"),
		Neo4jUser:     os.Getenv("NEO4J_USERNAME"),
		Neo4jPass:     os.Getenv("NEO4J_PASSWORD"),
		Neo4jDatabase: getEnv("NEO4J_DATABASE", "neo4j"),
		QdrantUrl:     os.Getenv("QDRANT_URL"),
	}

	llmConfig := types.LlmConfig{
		HuggingToken: os.Getenv("HUGGING_TOKEN"),
		GeminiApiKey: os.Getenv("GEMINI_API_KEY"),
		OpenAiApiKey: os.Getenv("OPENAI_API_KEY"),
	}

	return types.Config{
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		CollectionName: getEnv("COLLECTION_NAME", "ScientificPapersFullContent"),
		RequestTimeout: requestTimeout(),
		Db:             dbConfig,
		Llm:            llmConfig,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func requestTimeout() time.Duration {
	raw := os.Getenv("REQUEST_TIMEOUT_SECONDS")
	if raw == "" {
		return defaultRequestTimeout
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(seconds) * time.Second
}
