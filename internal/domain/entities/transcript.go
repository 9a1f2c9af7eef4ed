package entities

// Token is a single unit produced by the tokenizer. Text is lowercased;
// IsPunct marks punctuation tokens, which are excluded from word counts.
type Token struct {
	Text    string `json:"text"`
	IsPunct bool   `json:"is_punct"`
}
