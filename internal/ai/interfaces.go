package ai

import "context"

// Client is the LLM boundary used by roadmap generation. Complete sends a
// single prompt pair and returns the model's raw text output: downstream
// parsing and repair is the caller's concern, so no response schema is
// enforced here.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
