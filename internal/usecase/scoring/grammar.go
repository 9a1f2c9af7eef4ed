package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/speechcoach/intro-scorer/internal/domain/entities"
)

// ScoreGrammar runs the grammar checker, filters out stylistic noise, and
// bands the remaining error rate. A checker failure is absorbed into a
// mid-range default so grammar trouble never aborts the report.
func (s *IntroductionScorer) ScoreGrammar(ctx context.Context) (int, string) {
	matches, err := s.grammar.Check(ctx, s.text)
	if err != nil {
		return 5, fmt.Sprintf("Error during grammar check: %s", err.Error())
	}

	var scoringErrors, ignoredIssues []entities.GrammarMatch
	for _, m := range matches {
		if s.isIgnoredMatch(m) {
			ignoredIssues = append(ignoredIssues, m)
		} else {
			scoringErrors = append(scoringErrors, m)
		}
	}

	errorsPer100 := 0.0
	if s.totalWords > 0 {
		errorsPer100 = float64(len(scoringErrors)) / float64(s.totalWords) * 100
	}

	// Conservative linear penalty: 5 scoring errors per 100 words zeroes it
	metric := 1 - math.Min(errorsPer100/5, 1)

	var score int
	var grade string
	switch {
	case metric > 0.9:
		score, grade = 10, "Flawless"
	case metric >= 0.7:
		score, grade = 8, "Good"
	case metric >= 0.5:
		score, grade = 6, "Average"
	case metric >= 0.3:
		score, grade = 4, "Needs Improvement"
	default:
		score, grade = 2, "Poor"
	}

	lines := []string{
		fmt.Sprintf("%s (Score: %d/10)", grade, score),
		"NOTE: Spelling, hyphens, punctuation, and style ignored.",
	}

	if len(scoringErrors) > 0 {
		lines = append(lines, fmt.Sprintf("\n[CRITICAL GRAMMAR ERRORS] (%d found):", len(scoringErrors)))
		for _, m := range firstN(scoringErrors, 3) {
			lines = append(lines, fmt.Sprintf("   - %s (Context: '...%s...')", m.Message, m.Context(s.text)))
		}
	} else {
		lines = append(lines, "\n[CRITICAL GRAMMAR ERRORS]: None.")
	}

	if len(ignoredIssues) > 0 {
		lines = append(lines, fmt.Sprintf("\n[IGNORED ISSUES] (%d found):", len(ignoredIssues)))
		for _, m := range firstN(ignoredIssues, 3) {
			msg := m.Message
			if msg == "" {
				msg = "Issue"
			}
			lines = append(lines, fmt.Sprintf("   - %s (Context: '...%s...')", msg, m.Context(s.text)))
		}
	}

	return score, strings.Join(lines, "\n")
}

// isIgnoredMatch excludes pure hyphenation suggestions and matches whose
// rule id or message names a stylistic issue.
func (s *IntroductionScorer) isIgnoredMatch(m entities.GrammarMatch) bool {
	if top := m.TopReplacement(); top != "" && strings.Contains(top, "-") {
		flagged := m.Span(s.text)
		if strings.ReplaceAll(top, "-", "") == strings.ReplaceAll(flagged, " ", "") {
			return true
		}
	}

	msg := strings.ToLower(m.Message)
	rid := strings.ToLower(m.RuleID)
	for _, kw := range grammarIgnoreKeywords {
		if strings.Contains(msg, kw) || strings.Contains(rid, kw) {
			return true
		}
	}
	return false
}

func firstN(matches []entities.GrammarMatch, n int) []entities.GrammarMatch {
	if len(matches) <= n {
		return matches
	}
	return matches[:n]
}
