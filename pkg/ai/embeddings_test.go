package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/speechcoach/intro-scorer/pkg/config"
)

func TestEncode_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		var req EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		resp := EmbedResponse{Embeddings: make([][]float64, len(req.Texts))}
		for i := range req.Texts {
			resp.Embeddings[i] = []float64{float64(i), 1, 0}
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client := NewEmbeddingClient(&config.EmbeddingConfig{BaseURL: ts.URL})
	vectors, err := client.Encode(context.Background(), []string{"hello", "world"})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors got %d", len(vectors))
	}
	if vectors[1][0] != 1 {
		t.Fatalf("unexpected vector %v", vectors[1])
	}
}

func TestEncode_CountMismatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(EmbedResponse{Embeddings: [][]float64{{1}}})
	}))
	defer ts.Close()

	client := NewEmbeddingClient(&config.EmbeddingConfig{BaseURL: ts.URL})
	if _, err := client.Encode(context.Background(), []string{"a", "b"}); err == nil {
		t.Fatal("expected error on vector count mismatch")
	}
}

func TestEncode_ClientErrorNotRetried(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	client := NewEmbeddingClient(&config.EmbeddingConfig{BaseURL: ts.URL})
	if _, err := client.Encode(context.Background(), []string{"a"}); err == nil {
		t.Fatal("expected error on 400 response")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call got %d", calls)
	}
}

func TestEncode_EmptyInput(t *testing.T) {
	client := NewEmbeddingClient(&config.EmbeddingConfig{BaseURL: "http://unused"})
	vectors, err := client.Encode(context.Background(), nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if len(vectors) != 0 {
		t.Fatalf("expected no vectors got %d", len(vectors))
	}
}
