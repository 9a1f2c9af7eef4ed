package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/speechcoach/intro-scorer/internal/domain/entities"
	"github.com/speechcoach/intro-scorer/pkg/config"
)

// LanguageToolClient is a minimal client for the LanguageTool /v2/check API
type LanguageToolClient struct {
	baseURL  string
	language string
	client   *http.Client
}

// NewLanguageToolClient creates a LanguageTool client using the provided
// config. Pass a nil config to fall back to environment variables.
func NewLanguageToolClient(cfg *config.GrammarConfig) *LanguageToolClient {
	var base, language string
	timeout := 30 * time.Second
	if cfg != nil {
		base = cfg.BaseURL
		language = cfg.Language
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if base == "" {
		base = os.Getenv("LANGUAGETOOL_URL")
		if base == "" {
			base = "https://api.languagetool.org"
		}
	}
	if language == "" {
		language = "en-US"
	}
	return &LanguageToolClient{
		baseURL:  base,
		language: language,
		client:   &http.Client{Timeout: timeout},
	}
}

// checkResponse mirrors the subset of the LanguageTool response we consume
type checkResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
		Offset int `json:"offset"`
		Length int `json:"length"`
		Rule   struct {
			ID string `json:"id"`
		} `json:"rule"`
	} `json:"matches"`
}

// Check runs the text through LanguageTool and returns its matches in
// document order. Match offsets and lengths count characters, the unit the
// service reports in. Any transport or decode failure is returned to the
// caller; the grammar scorer decides how to degrade.
func (c *LanguageToolClient) Check(ctx context.Context, text string) ([]entities.GrammarMatch, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("languagetool returned status %d", resp.StatusCode)
	}

	var cr checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode languagetool response: %w", err)
	}

	matches := make([]entities.GrammarMatch, 0, len(cr.Matches))
	for _, m := range cr.Matches {
		reps := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			reps = append(reps, r.Value)
		}
		length := m.Length
		if length == 0 {
			length = entities.DefaultErrorLength
		}
		matches = append(matches, entities.GrammarMatch{
			RuleID:       m.Rule.ID,
			Message:      m.Message,
			Replacements: reps,
			Offset:       m.Offset,
			Length:       length,
		})
	}
	return matches, nil
}
