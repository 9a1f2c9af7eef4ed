package validator

import (
	"strings"
	"testing"
)

type sample struct {
	Transcript string  `validate:"required"`
	Duration   float64 `validate:"gte=0"`
}

func TestValidate_Passes(t *testing.T) {
	cv := New()
	if err := cv.Validate(sample{Transcript: "Hello everyone.", Duration: 30}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ReadableFieldErrors(t *testing.T) {
	cv := New()
	err := cv.Validate(sample{Transcript: "", Duration: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Transcript failed on 'required'") {
		t.Errorf("missing transcript failure in %q", msg)
	}
	if !strings.Contains(msg, "Duration failed on 'gte=0'") {
		t.Errorf("missing duration failure in %q", msg)
	}
}
