package scoring

import (
	"context"
	"strings"
	"testing"
)

func TestScoreFlow_OrderedWithShortBody(t *testing.T) {
	s := newTestScorer("Hello everyone. My name is Alex and I love hiking. Thank you.", 0, scorerDeps{})
	score, feedback, err := s.ScoreFlow(context.Background())
	if err != nil {
		t.Fatalf("flow scoring failed: %v", err)
	}
	if score != 5 {
		t.Fatalf("expected 5 got %d (%s)", score, feedback)
	}
	if feedback != "Perfect Flow" && feedback != "Good Flow (Short body)" {
		t.Fatalf("unexpected feedback %q", feedback)
	}
}

func TestScoreFlow_PerfectWithBody(t *testing.T) {
	transcript := "Hello everyone. My name is Alex. I play chess with my family. My dream is to win. Thank you."
	s := newTestScorer(transcript, 0, scorerDeps{})
	score, feedback, err := s.ScoreFlow(context.Background())
	if err != nil {
		t.Fatalf("flow scoring failed: %v", err)
	}
	if score != 5 || feedback != "Perfect Flow" {
		t.Fatalf("expected perfect flow got %d %q", score, feedback)
	}
}

func TestScoreFlow_MissingClosing(t *testing.T) {
	s := newTestScorer("Hello everyone. My name is Alex.", 0, scorerDeps{})
	score, feedback, err := s.ScoreFlow(context.Background())
	if err != nil {
		t.Fatalf("flow scoring failed: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected 0 got %d (%s)", score, feedback)
	}
	if !strings.HasPrefix(feedback, "Flow disordered.") || !strings.Contains(feedback, "End=X") {
		t.Fatalf("unexpected feedback %q", feedback)
	}
}

func TestScoreFlow_IntroAndClosingInSameSentence(t *testing.T) {
	s := newTestScorer("Hello everyone. My name is Alex thank you.", 0, scorerDeps{})
	score, feedback, err := s.ScoreFlow(context.Background())
	if err != nil {
		t.Fatalf("flow scoring failed: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected 0 got %d (%s)", score, feedback)
	}
	if !strings.HasPrefix(feedback, "Disordered: Introduction and Closing are detected in same sentence.") {
		t.Fatalf("unexpected feedback %q", feedback)
	}
}

func TestScoreFlow_NoIntroStillAcceptable(t *testing.T) {
	s := newTestScorer("Good morning. I talked about cooking. Thanks.", 0, scorerDeps{})
	score, feedback, err := s.ScoreFlow(context.Background())
	if err != nil {
		t.Fatalf("flow scoring failed: %v", err)
	}
	if score != 5 || feedback != "Acceptable Flow" {
		t.Fatalf("expected acceptable flow got %d %q", score, feedback)
	}
}

func TestScoreFlow_EmptyTranscript(t *testing.T) {
	s := newTestScorer("", 0, scorerDeps{})
	score, feedback, err := s.ScoreFlow(context.Background())
	if err != nil {
		t.Fatalf("flow scoring failed: %v", err)
	}
	if score != 0 || feedback != "No text" {
		t.Fatalf("expected no-text branch got %d %q", score, feedback)
	}
}
