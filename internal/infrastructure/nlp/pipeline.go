package nlp

import (
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"

	"github.com/speechcoach/intro-scorer/internal/domain/entities"
)

// Pipeline segments and tokenizes English text. It is stateless and safe for
// concurrent use; the underlying models are loaded once per document parse.
type Pipeline struct{}

// NewPipeline creates a new linguistic pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Analyze parses text once and returns its trimmed sentences and lowercased
// tokens in document order, with punctuation tokens flagged.
func (p *Pipeline) Analyze(text string) ([]string, []entities.Token, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, []entities.Token{}, nil
	}
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithTagging(false))
	if err != nil {
		return nil, nil, err
	}

	sents := doc.Sentences()
	sentences := make([]string, 0, len(sents))
	for _, s := range sents {
		if t := strings.TrimSpace(s.Text); t != "" {
			sentences = append(sentences, t)
		}
	}

	toks := doc.Tokens()
	tokens := make([]entities.Token, 0, len(toks))
	for _, t := range toks {
		tokens = append(tokens, entities.Token{
			Text:    strings.ToLower(t.Text),
			IsPunct: isPunct(t.Text),
		})
	}
	return sentences, tokens, nil
}

func isPunct(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
