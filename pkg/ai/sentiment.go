package ai

import govader "github.com/jonreiter/govader"

// SentimentAnalyzer wraps the VADER lexicon analyzer. The underlying
// analyzer is read-only after construction and safe for concurrent use.
type SentimentAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewSentimentAnalyzer loads the VADER lexicon once for the process
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns the compound polarity of text in [-1, 1]
func (s *SentimentAnalyzer) Polarity(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}
