package scoring

import (
	"context"

	"github.com/speechcoach/intro-scorer/internal/domain/entities"
)

// SentencePipeline segments and tokenizes raw text in a single pass.
// Implementations must be deterministic: the same text always yields the
// same sentences and tokens.
type SentencePipeline interface {
	Analyze(text string) (sentences []string, tokens []entities.Token, err error)
}

// Encoder embeds texts into fixed-dimension vectors, one per input, in
// input order. Similarity between vectors is cosine.
type Encoder interface {
	Encode(ctx context.Context, texts []string) ([][]float64, error)
}

// GrammarChecker reports grammar issues in document order. It may fail;
// the grammar scorer contains that failure locally.
type GrammarChecker interface {
	Check(ctx context.Context, text string) ([]entities.GrammarMatch, error)
}

// SentimentAnalyzer returns a compound polarity in [-1, 1]
type SentimentAnalyzer interface {
	Polarity(text string) float64
}
