package entities

// ScoreEntry holds one rubric category result: the awarded score, the
// category ceiling, and human-readable feedback.
type ScoreEntry struct {
	Score    int    `json:"score"`
	Max      int    `json:"max"`
	Feedback string `json:"feedback"`
}

// ScoreBreakdown holds the per-category results. The JSON keys and their
// order are part of the API contract consumed by the form UI.
type ScoreBreakdown struct {
	Salutation ScoreEntry `json:"Salutation"`
	Content    ScoreEntry `json:"Content & Structure"`
	Flow       ScoreEntry `json:"Flow"`
	SpeechRate ScoreEntry `json:"Speech Rate"`
	Grammar    ScoreEntry `json:"Grammar"`
	Vocabulary ScoreEntry `json:"Vocabulary"`
	Clarity    ScoreEntry `json:"Clarity (Fillers)"`
	Engagement ScoreEntry `json:"Engagement"`
}

// ScoreReport is the complete rubric evaluation of one transcript.
// TotalScore always equals the sum of the breakdown scores (max 100).
type ScoreReport struct {
	TotalScore int            `json:"Total Score"`
	Breakdown  ScoreBreakdown `json:"Breakdown"`
}

// Entries returns the breakdown in rubric order, paired with category names.
// Used by presenters that need ordered iteration (Go maps do not keep order).
func (b ScoreBreakdown) Entries() []NamedEntry {
	return []NamedEntry{
		{"Salutation", b.Salutation},
		{"Content & Structure", b.Content},
		{"Flow", b.Flow},
		{"Speech Rate", b.SpeechRate},
		{"Grammar", b.Grammar},
		{"Vocabulary", b.Vocabulary},
		{"Clarity (Fillers)", b.Clarity},
		{"Engagement", b.Engagement},
	}
}

// NamedEntry pairs a category name with its score entry.
type NamedEntry struct {
	Category string
	Entry    ScoreEntry
}

// Sum returns the total of all breakdown scores.
func (b ScoreBreakdown) Sum() int {
	total := 0
	for _, e := range b.Entries() {
		total += e.Entry.Score
	}
	return total
}
