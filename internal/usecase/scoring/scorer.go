package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/speechcoach/intro-scorer/internal/domain/entities"
)

// IntroductionScorer evaluates one transcript against the rubric. It is
// built once per transcript+duration pair, preprocesses the text a single
// time, and is discarded after producing one report. The injected model
// handles are shared and read-only; the scorer owns all derived state.
type IntroductionScorer struct {
	text        string
	textLower   string
	durationSec float64
	durationMin float64

	sentences  []string
	words      []string
	totalWords int

	encoder   Encoder
	grammar   GrammarChecker
	sentiment SentimentAnalyzer

	// sentence embeddings, computed at most once per scorer
	sentenceVecs      [][]float64
	sentenceVecsReady bool
}

// NewIntroductionScorer preprocesses the transcript and returns a scorer.
// A zero or negative duration means "not provided".
func NewIntroductionScorer(
	pipeline SentencePipeline,
	encoder Encoder,
	grammar GrammarChecker,
	sentiment SentimentAnalyzer,
	transcript string,
	durationSec float64,
) (*IntroductionScorer, error) {
	if durationSec < 0 {
		durationSec = 0
	}

	sentences, tokens, err := pipeline.Analyze(transcript)
	if err != nil {
		return nil, fmt.Errorf("analyze transcript: %w", err)
	}

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsPunct {
			words = append(words, tok.Text)
		}
	}

	durationMin := 0.0
	if durationSec > 0 {
		durationMin = durationSec / 60
	}

	return &IntroductionScorer{
		text:        transcript,
		textLower:   strings.ToLower(transcript),
		durationSec: durationSec,
		durationMin: durationMin,
		sentences:   sentences,
		words:       words,
		totalWords:  len(words),
		encoder:     encoder,
		grammar:     grammar,
		sentiment:   sentiment,
	}, nil
}

// Report runs all eight scorers once and assembles the aggregate report.
// An encoder failure aborts the whole report; the grammar checker is the
// only collaborator whose failure is absorbed into a default score.
func (s *IntroductionScorer) Report(ctx context.Context) (*entities.ScoreReport, error) {
	salScore, salFb := s.ScoreSalutation()

	contentScore, contentFb, err := s.ScoreContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("content scoring: %w", err)
	}

	flowScore, flowFb, err := s.ScoreFlow(ctx)
	if err != nil {
		return nil, fmt.Errorf("flow scoring: %w", err)
	}

	rateScore, rateFb := s.ScoreSpeechRate()
	grammarScore, grammarFb := s.ScoreGrammar(ctx)
	vocabScore, vocabFb := s.ScoreVocabulary()
	clarityScore, clarityFb := s.ScoreClarity()
	engageScore, engageFb := s.ScoreEngagement()

	breakdown := entities.ScoreBreakdown{
		Salutation: entities.ScoreEntry{Score: salScore, Max: MaxSalutation, Feedback: salFb},
		Content:    entities.ScoreEntry{Score: contentScore, Max: MaxContent, Feedback: contentFb},
		Flow:       entities.ScoreEntry{Score: flowScore, Max: MaxFlow, Feedback: flowFb},
		SpeechRate: entities.ScoreEntry{Score: rateScore, Max: MaxSpeechRate, Feedback: rateFb},
		Grammar:    entities.ScoreEntry{Score: grammarScore, Max: MaxGrammar, Feedback: grammarFb},
		Vocabulary: entities.ScoreEntry{Score: vocabScore, Max: MaxVocabulary, Feedback: vocabFb},
		Clarity:    entities.ScoreEntry{Score: clarityScore, Max: MaxClarity, Feedback: clarityFb},
		Engagement: entities.ScoreEntry{Score: engageScore, Max: MaxEngagement, Feedback: engageFb},
	}

	return &entities.ScoreReport{
		TotalScore: breakdown.Sum(),
		Breakdown:  breakdown,
	}, nil
}

// ScoreSalutation searches the transcript for greeting phrases, best tier
// first. The first phrase found in priority order wins.
func (s *IntroductionScorer) ScoreSalutation() (int, string) {
	for _, phrase := range salutationExcellent {
		if strings.Contains(s.textLower, phrase) {
			return 5, fmt.Sprintf("Excellent salutation used: '%s'", phrase)
		}
	}
	for _, phrase := range salutationGood {
		if strings.Contains(s.textLower, phrase) {
			return 4, fmt.Sprintf("Good salutation used: '%s'", phrase)
		}
	}
	for _, word := range salutationNormal {
		if strings.Contains(s.textLower, word) {
			return 2, "Basic salutation used (Hi/Hello). Try to be more formal."
		}
	}
	return 0, "No salutation found."
}

// ScoreSpeechRate bands words-per-minute. A missing duration is scored as
// ideal rather than penalized.
func (s *IntroductionScorer) ScoreSpeechRate() (int, string) {
	if s.durationSec == 0 {
		return 10, "Duration not provided (Assumed Ideal)"
	}

	wpm := 0.0
	if s.durationMin > 0 {
		wpm = float64(s.totalWords) / s.durationMin
	}

	switch {
	case wpm >= 111 && wpm <= 140:
		return 10, fmt.Sprintf("Ideal (%d WPM)", int(wpm))
	case wpm >= 81 && wpm <= 160:
		return 6, fmt.Sprintf("Acceptable (%d WPM)", int(wpm))
	case wpm > 140:
		return 2, fmt.Sprintf("Too Fast (%d WPM)", int(wpm))
	case wpm < 81:
		return 2, fmt.Sprintf("Too Slow (%d WPM)", int(wpm))
	}
	return 2, fmt.Sprintf("Poor Pacing (%d WPM)", int(wpm))
}

// ScoreVocabulary bands the type-token ratio
func (s *IntroductionScorer) ScoreVocabulary() (int, string) {
	distinct := make(map[string]struct{}, s.totalWords)
	for _, w := range s.words {
		distinct[w] = struct{}{}
	}

	ttr := 0.0
	if s.totalWords > 0 {
		ttr = float64(len(distinct)) / float64(s.totalWords)
	}

	switch {
	case ttr >= 0.9:
		return 10, fmt.Sprintf("Excellent variety (TTR: %.2f)", ttr)
	case ttr >= 0.7:
		return 8, fmt.Sprintf("Good variety (TTR: %.2f)", ttr)
	case ttr >= 0.5:
		return 6, fmt.Sprintf("Average variety (TTR: %.2f)", ttr)
	case ttr >= 0.3:
		return 4, fmt.Sprintf("Repetitive (TTR: %.2f)", ttr)
	}
	return 2, fmt.Sprintf("Very repetitive (TTR: %.2f)", ttr)
}

// ScoreClarity bands the filler-word rate
func (s *IntroductionScorer) ScoreClarity() (int, string) {
	fillerCount := 0
	for _, w := range s.words {
		if _, ok := fillerWords[w]; ok {
			fillerCount++
		}
	}

	fillerRate := 0.0
	if s.totalWords > 0 {
		fillerRate = float64(fillerCount) / float64(s.totalWords) * 100
	}

	switch {
	case fillerRate <= 3:
		return 15, fmt.Sprintf("Clear speech (%d fillers)", fillerCount)
	case fillerRate <= 6:
		return 12, fmt.Sprintf("Mostly clear (%d fillers)", fillerCount)
	case fillerRate <= 9:
		return 9, fmt.Sprintf("Some hesitation (%d fillers)", fillerCount)
	case fillerRate <= 12:
		return 6, fmt.Sprintf("Hesitant (%d fillers)", fillerCount)
	}
	return 3, fmt.Sprintf("Distracted by fillers (%d fillers)", fillerCount)
}

// ScoreEngagement bands lexicon sentiment normalized to [0, 1]. A top-band
// sentiment with no supporting enthusiasm vocabulary is capped just under
// the top band to keep pure lexical false positives out of it.
func (s *IntroductionScorer) ScoreEngagement() (int, string) {
	compound := s.sentiment.Polarity(s.text)
	prob := (compound + 1) / 2

	hasEnthusiasm := false
	for _, kw := range enthusiasmKeywords {
		if strings.Contains(s.textLower, kw) {
			hasEnthusiasm = true
			break
		}
	}
	if prob >= 0.9 && !hasEnthusiasm {
		prob = engagementCapWithoutEnthusiasm
	}

	switch {
	case prob >= 0.9:
		return 15, fmt.Sprintf("Very Engaging (Sentiment: %.2f)", prob)
	case prob >= 0.7:
		return 12, fmt.Sprintf("Positive (Sentiment: %.2f)", prob)
	case prob >= 0.5:
		return 9, fmt.Sprintf("Neutral (Sentiment: %.2f)", prob)
	case prob >= 0.3:
		return 6, fmt.Sprintf("Slightly Negative (Sentiment: %.2f)", prob)
	}
	return 3, fmt.Sprintf("Negative (Sentiment: %.2f)", prob)
}

// sentenceVectors embeds the transcript's sentences once and caches the
// result for the scorer's lifetime.
func (s *IntroductionScorer) sentenceVectors(ctx context.Context) ([][]float64, error) {
	if s.sentenceVecsReady {
		return s.sentenceVecs, nil
	}
	vecs, err := s.encoder.Encode(ctx, s.sentences)
	if err != nil {
		return nil, err
	}
	s.sentenceVecs = vecs
	s.sentenceVecsReady = true
	return vecs, nil
}
