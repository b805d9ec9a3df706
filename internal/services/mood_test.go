package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wellnest-health/wellnest-backend/internal/llm"
)

func TestClassify_NormalizesModelOutput(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Happy":      "Happy",
		"happy":      "Happy",
		" Happy\n":   "Happy",
		"Happy.":     "Happy",
		"\"Content\"": "Content",
		"SAD":        "Sad",
		"anxious!":   "Anxious",
		"neutral":    "Neutral",
	}

	for raw, want := range cases {
		oracle := &stubOracle{results: []stubResult{{text: raw}}}
		got, err := NewMoodClassifier(oracle).Classify(context.Background(), "some entry")
		if err != nil {
			t.Errorf("Classify(%q): %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("Classify(%q)=%q, want %q", raw, got, want)
		}
	}
}

func TestClassify_RejectsOutsideClosedSet(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Ecstatic", "", "Happy because you went out", "Sadness"} {
		oracle := &stubOracle{results: []stubResult{{text: raw}}}
		_, err := NewMoodClassifier(oracle).Classify(context.Background(), "some entry")
		if !errors.Is(err, ErrUnrecognizedMood) {
			t.Errorf("Classify(%q): err=%v, want ErrUnrecognizedMood", raw, err)
		}
	}
}

func TestClassify_PropagatesOracleFailure(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: []stubResult{{err: llm.ErrUnavailable}}}
	_, err := NewMoodClassifier(oracle).Classify(context.Background(), "some entry")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("err=%v, want ErrUnavailable", err)
	}
	if errors.Is(err, ErrUnrecognizedMood) {
		t.Error("oracle failure must not be reported as an unrecognized mood")
	}
}

func TestClassify_PromptCarriesTaxonomyAndEntry(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: []stubResult{{text: "Neutral"}}}
	entry := "walked the dog, nothing special"
	if _, err := NewMoodClassifier(oracle).Classify(context.Background(), entry); err != nil {
		t.Fatalf("Classify: %v", err)
	}

	prompt := oracle.prompts[0]
	if !strings.Contains(prompt, entry) {
		t.Errorf("prompt missing entry text: %q", prompt)
	}
	for _, label := range moodLabels {
		if !strings.Contains(prompt, label) {
			t.Errorf("prompt missing label %q", label)
		}
	}
}
