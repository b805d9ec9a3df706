package services

import (
	"context"

	"github.com/wellnest-health/wellnest-backend/internal/llm"
)

// SupportResponder generates a short empathetic reply to a journal entry,
// conditioned on its already-classified mood.
type SupportResponder struct {
	llm llm.Client
}

func NewSupportResponder(client llm.Client) *SupportResponder {
	return &SupportResponder{llm: client}
}

// Respond returns the generated supportive text as-is; it is free-form prose,
// not a constrained label.
func (r *SupportResponder) Respond(ctx context.Context, entry, mood string) (string, error) {
	return r.llm.Generate(ctx, supportPrompt(entry, mood))
}
