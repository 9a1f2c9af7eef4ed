package cache

import (
	"context"
	"testing"
	"time"
)

type countingEncoder struct {
	calls int
	texts [][]string
}

func (c *countingEncoder) Encode(_ context.Context, texts []string) ([][]float64, error) {
	c.calls++
	c.texts = append(c.texts, texts)
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = []float64{float64(len(t))}
	}
	return out, nil
}

func TestCachedEncoder_HitsAndMisses(t *testing.T) {
	inner := &countingEncoder{}
	ce := NewCachedEncoder(inner, NewMemoryStore(), time.Minute)
	ctx := context.Background()

	first, err := ce.Encode(ctx, []string{"hello", "world"})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call got %d", inner.calls)
	}

	// second call with one cached and one new text batches only the miss
	second, err := ce.Encode(ctx, []string{"hello", "again"})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 inner calls got %d", inner.calls)
	}
	if got := inner.texts[1]; len(got) != 1 || got[0] != "again" {
		t.Fatalf("expected only the miss to be encoded, got %v", got)
	}
	if second[0][0] != first[0][0] {
		t.Fatalf("cached vector mismatch: %v vs %v", second[0], first[0])
	}
}

func TestCachedEncoder_Empty(t *testing.T) {
	inner := &countingEncoder{}
	ce := NewCachedEncoder(inner, NewMemoryStore(), time.Minute)

	out, err := ce.Encode(context.Background(), nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if len(out) != 0 || inner.calls != 0 {
		t.Fatalf("expected no work for empty input")
	}
}
