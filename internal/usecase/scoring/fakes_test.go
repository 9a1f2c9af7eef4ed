package scoring

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/speechcoach/intro-scorer/internal/domain/entities"
)

// rulePipeline is a deterministic stand-in for the linguistic pipeline:
// sentences split on terminal punctuation, tokens split on whitespace with
// edge punctuation emitted as punct tokens.
type rulePipeline struct {
	calls int
}

func (p *rulePipeline) Analyze(text string) ([]string, []entities.Token, error) {
	p.calls++

	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	var tokens []entities.Token
	for _, field := range strings.Fields(text) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return unicode.IsPunct(r)
		})
		if word != "" {
			tokens = append(tokens, entities.Token{Text: strings.ToLower(word)})
		}
		for _, r := range field {
			if unicode.IsPunct(r) {
				tokens = append(tokens, entities.Token{Text: string(r), IsPunct: true})
			}
		}
	}
	return sentences, tokens, nil
}

// keywordEncoder maps texts onto a 4-dimensional space (greeting, intro,
// closing, body) so semantic matches are exact and reproducible in tests.
type keywordEncoder struct {
	calls int
}

var encoderBuckets = [4][]string{
	{"hello", "good morning", "hi", "greetings"},
	{"my name", "i am", "i'm", "i’m", "myself", "this is"},
	{"thank", "thanks", "that is all", "the end"},
	{"family", "mother", "school", "class", "hobby", "playing", "dream", "goal", "hiking"},
}

// bucketPatterns match each bucket keyword on word boundaries so short
// keywords like "hi" cannot match inside unrelated words ("this", "hiking").
var bucketPatterns = func() [4][]*regexp.Regexp {
	var out [4][]*regexp.Regexp
	for dim, words := range encoderBuckets {
		for _, w := range words {
			out[dim] = append(out[dim], regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
		}
	}
	return out
}()

func (e *keywordEncoder) Encode(_ context.Context, texts []string) ([][]float64, error) {
	e.calls++
	out := make([][]float64, len(texts))
	for i, text := range texts {
		lower := strings.ToLower(text)
		vec := make([]float64, 4)
		for dim, patterns := range bucketPatterns {
			for _, p := range patterns {
				if p.MatchString(lower) {
					vec[dim] = 1
					break
				}
			}
		}
		out[i] = vec
	}
	return out, nil
}

type fakeGrammar struct {
	matches []entities.GrammarMatch
	err     error
}

func (f fakeGrammar) Check(context.Context, string) ([]entities.GrammarMatch, error) {
	return f.matches, f.err
}

type fakeSentiment struct {
	compound float64
}

func (f fakeSentiment) Polarity(string) float64 {
	return f.compound
}

// scorerDeps bundles the fakes a test scorer is built from
type scorerDeps struct {
	grammar   GrammarChecker
	sentiment SentimentAnalyzer
}

func newTestScorer(transcript string, durationSec float64, deps scorerDeps) *IntroductionScorer {
	if deps.grammar == nil {
		deps.grammar = fakeGrammar{}
	}
	if deps.sentiment == nil {
		deps.sentiment = fakeSentiment{}
	}
	s, err := NewIntroductionScorer(&rulePipeline{}, &keywordEncoder{}, deps.grammar, deps.sentiment, transcript, durationSec)
	if err != nil {
		panic(err)
	}
	return s
}
