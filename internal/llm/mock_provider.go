package llm

import (
	"context"
	"encoding/json"
)

// MockProvider is a canned Provider used in tests and local development.
// Requests carrying an output schema get a JSON sentiment document; plain
// requests get Response.
type MockProvider struct {
	Response  string // text returned for plain generation requests
	Sentiment string // label returned for sentiment classification requests
	Err       error  // returned verbatim when set

	Calls []*GenerationRequest // every request seen, in order
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// Generate returns the canned response, honoring context cancellation.
func (m *MockProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	m.Calls = append(m.Calls, request)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}

	if request.OutputSchema != nil {
		sentiment := m.Sentiment
		if sentiment == "" {
			sentiment = "neutral"
		}
		payload, err := json.Marshal(SentimentResult{Sentiment: sentiment})
		if err != nil {
			return nil, err
		}
		return &GenerationResponse{
			Text:  string(payload),
			Usage: TokenUsage{InputTokens: 8, OutputTokens: 4, TotalTokens: 12},
		}, nil
	}

	return &GenerationResponse{
		Text:  m.Response,
		Usage: TokenUsage{InputTokens: 42, OutputTokens: 128, TotalTokens: 170},
	}, nil
}
