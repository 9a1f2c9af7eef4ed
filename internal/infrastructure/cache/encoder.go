package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Store is a key-value cache with per-key expiration
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, expiration time.Duration)
}

// Encoder mirrors the scoring engine's embedding port
type Encoder interface {
	Encode(ctx context.Context, texts []string) ([][]float64, error)
}

// CachedEncoder caches embedding vectors by text hash. Anchor phrases are
// constant across requests, so after warm-up only transcript sentences hit
// the embedding server.
type CachedEncoder struct {
	inner Encoder
	store Store
	ttl   time.Duration
}

// NewCachedEncoder wraps an encoder with a vector cache
func NewCachedEncoder(inner Encoder, store Store, ttl time.Duration) *CachedEncoder {
	return &CachedEncoder{inner: inner, store: store, ttl: ttl}
}

// Encode returns one vector per text, serving cached vectors where possible
// and batching the misses into a single inner call.
func (ce *CachedEncoder) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	vectors := make([][]float64, len(texts))
	missIdx := make([]int, 0, len(texts))
	missTexts := make([]string, 0, len(texts))

	for i, text := range texts {
		if raw, ok := ce.store.Get(ctx, vectorKey(text)); ok {
			var vec []float64
			if err := json.Unmarshal([]byte(raw), &vec); err == nil {
				vectors[i] = vec
				continue
			}
			// corrupt entry: fall through and re-encode
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, text)
	}

	if len(missTexts) > 0 {
		fresh, err := ce.inner.Encode(ctx, missTexts)
		if err != nil {
			return nil, err
		}
		for j, idx := range missIdx {
			vectors[idx] = fresh[j]
			if raw, err := json.Marshal(fresh[j]); err == nil {
				ce.store.Set(ctx, vectorKey(texts[idx]), string(raw), ce.ttl)
			}
		}
	}

	return vectors, nil
}

func vectorKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "emb:" + hex.EncodeToString(sum[:])
}
