package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/speechcoach/intro-scorer/pkg/config"
)

// EmbeddingClient is a minimal client for a sentence-embedding server
// (for example a sentence-transformers model behind an HTTP endpoint).
type EmbeddingClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewEmbeddingClient creates an embedding client using the provided config.
// Pass a nil config to fall back to environment variables.
func NewEmbeddingClient(cfg *config.EmbeddingConfig) *EmbeddingClient {
	var base, apiKey string
	timeout := 30 * time.Second
	if cfg != nil {
		base = cfg.BaseURL
		apiKey = cfg.APIKey
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if base == "" {
		base = os.Getenv("EMBEDDING_URL")
	}
	if apiKey == "" {
		apiKey = os.Getenv("EMBEDDING_API_KEY")
	}
	return &EmbeddingClient{
		baseURL: base,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// EmbedRequest is the payload for /embed
type EmbedRequest struct {
	Texts []string `json:"texts"`
}

// EmbedResponse is the server's response shape
type EmbedResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

// Encode returns one embedding vector per input text, in input order.
// Transient failures are retried with exponential backoff.
func (c *EmbeddingClient) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	var vectors [][]float64
	encodeFn := func() error {
		out, err := c.encodeOnce(ctx, texts)
		if err != nil {
			return err
		}
		vectors = out
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 20 * time.Second

	if err := backoff.Retry(encodeFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return vectors, nil
}

func (c *EmbeddingClient) encodeOnce(ctx context.Context, texts []string) ([][]float64, error) {
	b, err := json.Marshal(EmbedRequest{Texts: texts})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/embed", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("embedding server returned status %d", resp.StatusCode)
		if resp.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	var er EmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode embedding response: %w", err))
	}
	if len(er.Embeddings) != len(texts) {
		return nil, backoff.Permanent(fmt.Errorf("embedding server returned %d vectors for %d texts", len(er.Embeddings), len(texts)))
	}
	return er.Embeddings, nil
}
