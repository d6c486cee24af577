package types

import "time"

type DbConfig struct {
	Neo4jUri      string
	Neo4jUser     string
	Neo4jPass     string
	Neo4jDatabase string
	QdrantUrl     string
}

type LlmConfig struct {
	HuggingToken string
	GeminiApiKey string
	OpenAiApiKey string
}

type Config struct {
	ServerPort     string
	CollectionName string
	RequestTimeout time.Duration
	Db             DbConfig
	Llm            LlmConfig
}
