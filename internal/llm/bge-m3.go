package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultBGEEndpoint = "https://router.huggingface.co/hf-inference/models/BAAI/bge-m3/pipeline/feature-extraction"

// EmbeddingRequest is the request body for the feature-extraction pipeline.
type EmbeddingRequest struct {
	Inputs []string `json:"inputs"`
}

// BGEClient embeds text through the Hugging Face bge-m3 inference API.
type BGEClient struct {
	endpoint string
	apiToken string
	client   *http.Client
}

func NewBGEClient(apiToken string) *BGEClient {
	return &BGEClient{
		endpoint: defaultBGEEndpoint,
		apiToken: apiToken,
		client:   &http.Client{},
	}
}

func (c *BGEClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	reqBody := EmbeddingRequest{
		Inputs: texts,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Hugging Face API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorResponse interface{}
		json.NewDecoder(resp.Body).Decode(&errorResponse)
		return nil, fmt.Errorf("embedding API returned status %d: %v", resp.StatusCode, errorResponse)
	}

	var embeddings [][]float32
	if err := json.NewDecoder(resp.Body).Decode(&embeddings); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}

	return embeddings, nil
}
