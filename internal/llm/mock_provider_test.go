package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProviderPlainGeneration(t *testing.T) {
	mock := &MockProvider{Response: "generated text"}

	resp, err := mock.Generate(context.Background(), &GenerationRequest{
		Model:      "gemini-2.5-flash",
		UserPrompt: "write something",
	})
	require.NoError(t, err)

	assert.Equal(t, "generated text", resp.Text)
	assert.Equal(t, int64(170), resp.Usage.TotalTokens)
	require.Len(t, mock.Calls, 1)
	assert.Equal(t, "write something", mock.Calls[0].UserPrompt)
}

func TestMockProviderSchemaRequestReturnsSentimentJSON(t *testing.T) {
	mock := &MockProvider{Sentiment: "negative"}

	resp, err := mock.Generate(context.Background(), &GenerationRequest{
		Model:        "gemini-2.5-flash",
		UserPrompt:   "classify this",
		OutputSchema: GetSentimentOutputSchema(),
	})
	require.NoError(t, err)

	var result SentimentResult
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &result))
	assert.Equal(t, "negative", result.Sentiment)
}

func TestMockProviderSchemaRequestDefaultsNeutral(t *testing.T) {
	mock := &MockProvider{}

	resp, err := mock.Generate(context.Background(), &GenerationRequest{
		OutputSchema: GetSentimentOutputSchema(),
	})
	require.NoError(t, err)

	var result SentimentResult
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &result))
	assert.Equal(t, "neutral", result.Sentiment)
}

func TestMockProviderError(t *testing.T) {
	mock := &MockProvider{Err: errors.New("boom")}

	_, err := mock.Generate(context.Background(), &GenerationRequest{UserPrompt: "x"})
	require.Error(t, err)
	assert.Len(t, mock.Calls, 1, "failed calls are still recorded")
}

func TestMockProviderContextCancellation(t *testing.T) {
	mock := &MockProvider{Response: "never returned"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Generate(ctx, &GenerationRequest{UserPrompt: "x"})
	require.ErrorIs(t, err, context.Canceled)
}
