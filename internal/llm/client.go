package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnavailable indicates the language model service could not produce a
// response: network failure, non-2xx status, or a malformed reply. Callers
// must not retry here.
var ErrUnavailable = errors.New("language model unavailable")

// Client is the single entry point to the generative model. Output is
// non-deterministic across calls with identical prompts.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const defaultCallTimeout = 30 * time.Second

// OpenAIClient calls the OpenAI chat completion API with a per-call timeout.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient constructs an OpenAI-backed client. The model name can be
// overridden via configuration; a modern small model is the default.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: defaultCallTimeout,
	}
}

// Generate sends a single-turn prompt and returns the generated text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
