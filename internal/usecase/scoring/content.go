package scoring

import (
	"context"
	"fmt"
	"strings"
)

// ScoreContent awards points per rubric topic: 4 for each must-have fact,
// 2 for each bonus topic, clamped to the category ceiling. Topics are
// detected by regex first, then by sentence-to-anchor similarity where the
// topic permits it.
func (s *IntroductionScorer) ScoreContent(ctx context.Context) (int, string, error) {
	score := 0
	feedback := make([]string, 0, len(mustHaveTopics)+len(bonusTopics))

	for _, topic := range mustHaveTopics {
		matched, err := s.topicMatched(ctx, topic)
		if err != nil {
			return 0, "", err
		}
		if matched {
			score += topic.points
			feedback = append(feedback, fmt.Sprintf("[+] %s", topic.name))
		} else {
			feedback = append(feedback, fmt.Sprintf("[-] %s", topic.name))
		}
	}

	for _, topic := range bonusTopics {
		matched, err := s.topicMatched(ctx, topic)
		if err != nil {
			return 0, "", err
		}
		if matched {
			score += topic.points
			feedback = append(feedback, fmt.Sprintf("[+] %s", topic.name))
		}
	}

	if score > MaxContent {
		score = MaxContent
	}
	return score, strings.Join(feedback, ", "), nil
}

// topicMatched checks the topic's regex against the full transcript, then
// falls back to embeddings when allowed. A transcript with no sentences
// never matches semantically.
func (s *IntroductionScorer) topicMatched(ctx context.Context, topic contentTopic) (bool, error) {
	if topic.pattern.MatchString(s.text) {
		return true, nil
	}
	if !topic.semantic || len(topic.anchors) == 0 || len(s.sentences) == 0 {
		return false, nil
	}

	sentVecs, err := s.sentenceVectors(ctx)
	if err != nil {
		return false, err
	}
	anchorVecs, err := s.encoder.Encode(ctx, topic.anchors)
	if err != nil {
		return false, err
	}
	return maxSimilarity(sentVecs, anchorVecs) > topicSimilarityThreshold, nil
}
