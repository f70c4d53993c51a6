package llm

import (
	"context"
)

// Provider defines the interface for LLM providers.
// Providers MUST honor OutputSchema when set so JSON responses parse reliably.
type Provider interface {
	// Generate performs a single synchronous text generation.
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string
}

// GenerationRequest contains all parameters needed for one generation call
type GenerationRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	// Structured output schema - set when the response must be JSON
	OutputSchema *OutputSchema
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// TokenUsage holds token counts reported by the provider
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	// Text is the raw output text. When OutputSchema was set it is a JSON
	// document matching the schema; the caller parses it.
	Text  string     `json:"text"`
	Usage TokenUsage `json:"usage"`
}
