package scoring

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/speechcoach/intro-scorer/internal/domain/entities"
)

// Service scores introduction transcripts against the rubric
type Service interface {
	ScoreIntroduction(ctx context.Context, transcript string, durationSec float64) (*entities.ScoreReport, error)
}

type scoringService struct {
	pipeline  SentencePipeline
	encoder   Encoder
	grammar   GrammarChecker
	sentiment SentimentAnalyzer
	logger    *zap.Logger
}

// NewService constructs a scoring service. The injected collaborators are
// process-wide singletons; each request gets its own scorer instance, so
// independent requests may run concurrently.
func NewService(
	pipeline SentencePipeline,
	encoder Encoder,
	grammar GrammarChecker,
	sentiment SentimentAnalyzer,
	logger *zap.Logger,
) Service {
	return &scoringService{
		pipeline:  pipeline,
		encoder:   encoder,
		grammar:   grammar,
		sentiment: sentiment,
		logger:    logger,
	}
}

// ScoreIntroduction preprocesses the transcript, runs the full rubric and
// returns the aggregate report. No partial report is ever returned.
func (s *scoringService) ScoreIntroduction(ctx context.Context, transcript string, durationSec float64) (*entities.ScoreReport, error) {
	scorer, err := NewIntroductionScorer(s.pipeline, s.encoder, s.grammar, s.sentiment, transcript, durationSec)
	if err != nil {
		return nil, fmt.Errorf("preprocess transcript: %w", err)
	}

	report, err := scorer.Report(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("scoring aborted",
				zap.Int("word_count", scorer.totalWords),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("transcript scored",
			zap.Int("total_score", report.TotalScore),
			zap.Int("word_count", scorer.totalWords),
			zap.Int("sentence_count", len(scorer.sentences)),
			zap.Float64("duration_sec", durationSec),
		)
	}
	return report, nil
}
