package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wellnest-health/wellnest-backend/internal/llm"
)

// ErrUnrecognizedMood indicates the model returned text outside the closed
// mood set. The entry is rejected rather than tagged with a guess.
var ErrUnrecognizedMood = errors.New("unrecognized mood label")

// MoodClassifier tags a journal entry with one label from the closed mood
// set.
type MoodClassifier struct {
	llm llm.Client
}

func NewMoodClassifier(client llm.Client) *MoodClassifier {
	return &MoodClassifier{llm: client}
}

// Classify asks the model for the entry's primary mood and validates the
// answer against the closed set. The raw output is normalized first; chat
// models routinely add whitespace, casing, or trailing punctuation.
func (c *MoodClassifier) Classify(ctx context.Context, entry string) (string, error) {
	out, err := c.llm.Generate(ctx, moodPrompt(entry))
	if err != nil {
		return "", err
	}
	mood, ok := parseMood(out)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedMood, clip(out, 80))
	}
	return mood, nil
}

// parseMood returns the canonical label matching the model output, if any.
func parseMood(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, ".!\"'`")
	for _, label := range moodLabels {
		if strings.EqualFold(s, label) {
			return label, true
		}
	}
	return "", false
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
