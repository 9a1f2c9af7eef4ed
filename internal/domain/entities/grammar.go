package entities

// DefaultErrorLength is used when the grammar service omits the span length
// of a match.
const DefaultErrorLength = 5

// GrammarMatch is one issue reported by the grammar-checking service,
// normalized into a concrete type so scoring logic never deals with the
// service's loose wire shapes.
type GrammarMatch struct {
	RuleID       string   `json:"rule_id"`
	Message      string   `json:"message"`
	Replacements []string `json:"replacements"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
}

// TopReplacement returns the first suggested replacement, or "" if none.
func (m GrammarMatch) TopReplacement() string {
	if len(m.Replacements) == 0 {
		return ""
	}
	return m.Replacements[0]
}

// Span returns the flagged substring of text, clamped to valid bounds.
// Offset and Length count characters, not bytes, matching what the grammar
// service reports.
func (m GrammarMatch) Span(text string) string {
	return clampSlice(text, m.Offset, m.Length)
}

// Context returns the flagged substring plus up to 10 trailing characters,
// with newlines flattened, for feedback snippets.
func (m GrammarMatch) Context(text string) string {
	out := []rune(clampSlice(text, m.Offset, m.Length+10))
	for i, r := range out {
		if r == '\n' {
			out[i] = ' '
		}
	}
	return string(out)
}

func clampSlice(text string, offset, length int) string {
	runes := []rune(text)
	if offset < 0 {
		offset = 0
	}
	if offset >= len(runes) {
		return ""
	}
	end := offset + length
	if length < 0 || end > len(runes) {
		end = len(runes)
	}
	return string(runes[offset:end])
}
