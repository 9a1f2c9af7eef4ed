package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/speechcoach/intro-scorer/pkg/config"
)

func TestCheck_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("invalid form: %v", err)
		}
		if r.PostForm.Get("language") != "en-US" {
			t.Fatalf("unexpected language %q", r.PostForm.Get("language"))
		}
		fmt.Fprint(w, `{"matches":[
			{"message":"Possible agreement error","replacements":[{"value":"are"}],"offset":5,"length":2,"rule":{"id":"SUBJECT_VERB_AGREEMENT"}},
			{"message":"Whitespace repetition","replacements":[],"offset":10,"rule":{"id":"WHITESPACE_RULE"}}
		]}`)
	}))
	defer ts.Close()

	client := NewLanguageToolClient(&config.GrammarConfig{BaseURL: ts.URL, Language: "en-US"})
	matches, err := client.Check(context.Background(), "they is here")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches got %d", len(matches))
	}
	if matches[0].RuleID != "SUBJECT_VERB_AGREEMENT" || matches[0].TopReplacement() != "are" {
		t.Fatalf("unexpected first match %+v", matches[0])
	}
	// length omitted by the server falls back to the documented default
	if matches[1].Length != 5 {
		t.Fatalf("expected default length 5 got %d", matches[1].Length)
	}
}

func TestCheck_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewLanguageToolClient(&config.GrammarConfig{BaseURL: ts.URL})
	if _, err := client.Check(context.Background(), "text"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}
