package scoring

import (
	"context"
	"testing"
)

func TestScoreContent_RegexFacts(t *testing.T) {
	s := newTestScorer("My name is Alex.", 0, scorerDeps{})
	score, feedback, err := s.ScoreContent(context.Background())
	if err != nil {
		t.Fatalf("content scoring failed: %v", err)
	}
	if score != 4 {
		t.Fatalf("expected 4 got %d (%s)", score, feedback)
	}
	if feedback != "[+] Name, [-] Age, [-] School, [-] Family, [-] Hobbies" {
		t.Fatalf("unexpected feedback %q", feedback)
	}
}

func TestScoreContent_AgeAddsExactlyFour(t *testing.T) {
	base := newTestScorer("My name is Alex.", 0, scorerDeps{})
	baseScore, _, err := base.ScoreContent(context.Background())
	if err != nil {
		t.Fatalf("content scoring failed: %v", err)
	}

	withAge := newTestScorer("My name is Alex. I am 14 years old.", 0, scorerDeps{})
	ageScore, _, err := withAge.ScoreContent(context.Background())
	if err != nil {
		t.Fatalf("content scoring failed: %v", err)
	}

	if ageScore-baseScore != 4 {
		t.Fatalf("expected age phrase to add exactly 4: base %d with-age %d", baseScore, ageScore)
	}
}

func TestScoreContent_SemanticFallback(t *testing.T) {
	// no topic regex matches, but the sentence is semantically close to the
	// hobby and family anchors
	s := newTestScorer("I love hiking every weekend.", 0, scorerDeps{})
	score, feedback, err := s.ScoreContent(context.Background())
	if err != nil {
		t.Fatalf("content scoring failed: %v", err)
	}
	if score != 8 {
		t.Fatalf("expected 8 got %d (%s)", score, feedback)
	}
	if feedback != "[-] Name, [-] Age, [-] School, [+] Family, [+] Hobbies" {
		t.Fatalf("unexpected feedback %q", feedback)
	}
}

func TestScoreContent_NoSemanticFallbackWithoutSentences(t *testing.T) {
	s := newTestScorer("", 0, scorerDeps{})
	score, feedback, err := s.ScoreContent(context.Background())
	if err != nil {
		t.Fatalf("content scoring failed: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected 0 got %d (%s)", score, feedback)
	}
}

func TestScoreContent_AllTopicsClampedToMax(t *testing.T) {
	transcript := "Good morning everyone. My name is Alex. I am 14 years old and study in class 9 at school. " +
		"I live with my family and parents. My hobby is playing chess. " +
		"My dream is to become a pilot. I am good at math and confident. " +
		"A fun fact about me is quite unique. I am from Delhi. I won an award. Thank you."
	s := newTestScorer(transcript, 0, scorerDeps{})
	score, feedback, err := s.ScoreContent(context.Background())
	if err != nil {
		t.Fatalf("content scoring failed: %v", err)
	}
	if score != MaxContent {
		t.Fatalf("expected %d got %d (%s)", MaxContent, score, feedback)
	}
	want := "[+] Name, [+] Age, [+] School, [+] Family, [+] Hobbies, " +
		"[+] Ambition, [+] Strength, [+] Unique, [+] Origin, [+] Achievements"
	if feedback != want {
		t.Fatalf("unexpected feedback %q", feedback)
	}
}
