package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amanjha112113/ai-text-generator/internal/llm"
	"github.com/Amanjha112113/ai-text-generator/internal/models"
)

type stubResolver struct {
	provider llm.Provider
	err      error
}

func (r *stubResolver) GetProvider(_ context.Context, _, _ string) (llm.Provider, error) {
	return r.provider, r.err
}

// failsClassification fails schema-constrained requests only, so detection
// fallback can be exercised while generation still succeeds.
type failsClassification struct {
	llm.MockProvider
}

func (p *failsClassification) Generate(ctx context.Context, req *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	if req.OutputSchema != nil {
		p.Calls = append(p.Calls, req)
		return nil, errors.New("classification unavailable")
	}
	return p.MockProvider.Generate(ctx, req)
}

func newTestService(provider llm.Provider) *GenerationService {
	return NewGenerationServiceWithResolver(&stubResolver{provider: provider}, "gemini-2.5-flash")
}

func TestGenerateEmptyTextFailsWithoutProviderCall(t *testing.T) {
	mock := &llm.MockProvider{Response: "unused"}
	svc := newTestService(mock)

	_, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  "   ",
		Tone:  models.ToneAuto,
		Style: models.StyleNormal,
	})

	require.ErrorIs(t, err, models.ErrEmptyText)
	assert.Empty(t, mock.Calls, "provider must not be contacted for empty input")
}

func TestGeneratePromptContainsTextVerbatim(t *testing.T) {
	mock := &llm.MockProvider{Response: "A cheerful piece.", Sentiment: "positive"}
	svc := newTestService(mock)

	input := "I absolutely loved the concert last night!"
	result, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  input,
		Tone:  models.ToneAuto,
		Style: models.StyleNormal,
	})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 2, "expected one detection call and one generation call")
	assert.Contains(t, mock.Calls[0].UserPrompt, input)
	assert.Contains(t, mock.Calls[1].UserPrompt, input)
	assert.Equal(t, input, result.Response.Prompt)
}

func TestGenerateExplicitToneSkipsDetection(t *testing.T) {
	mock := &llm.MockProvider{Response: "A gloomy piece."}
	svc := newTestService(mock)

	result, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  "The project was cancelled.",
		Tone:  models.ToneNegative,
		Style: models.StyleNormal,
	})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1, "explicit tone must not trigger a classification call")
	assert.Nil(t, mock.Calls[0].OutputSchema)
	assert.Equal(t, models.ToneNegative, result.Response.Sentiment)
	assert.False(t, result.Response.Detected)
}

func TestGenerateAutoDetectUsesClassifierResult(t *testing.T) {
	mock := &llm.MockProvider{Response: "A cheerful piece.", Sentiment: "positive"}
	svc := newTestService(mock)

	result, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  "What a wonderful day!",
		Tone:  models.ToneAuto,
		Style: models.StyleELI10,
	})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 2)
	require.NotNil(t, mock.Calls[0].OutputSchema)
	assert.Equal(t, models.TonePositive, result.Response.Sentiment)
	assert.True(t, result.Response.Detected)
}

func TestGenerateShortInputClassifiedNeutralLocally(t *testing.T) {
	mock := &llm.MockProvider{Response: "Short and steady."}
	svc := newTestService(mock)

	result, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  "ok",
		Tone:  models.ToneAuto,
		Style: models.StyleNormal,
	})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1, "short input must be classified without a remote call")
	assert.Nil(t, mock.Calls[0].OutputSchema)
	assert.Equal(t, models.ToneNeutral, result.Response.Sentiment)
	assert.True(t, result.Response.Detected)
}

func TestGenerateDetectionFailureFallsBackToNeutral(t *testing.T) {
	provider := &failsClassification{
		MockProvider: llm.MockProvider{Response: "A balanced piece."},
	}
	svc := newTestService(provider)

	result, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  "The weather today is quite something.",
		Tone:  models.ToneAuto,
		Style: models.StyleNormal,
	})
	require.NoError(t, err, "auto-detection must never fail the request")

	assert.Equal(t, models.ToneNeutral, result.Response.Sentiment)
	assert.True(t, result.Response.Detected)
	assert.Equal(t, "A balanced piece.", result.Response.Text)
}

func TestGenerateProviderFailureSurfaced(t *testing.T) {
	mock := &llm.MockProvider{Err: errors.New("model overloaded")}
	svc := newTestService(mock)

	result, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  "Tell me about the ocean.",
		Tone:  models.ToneNeutral,
		Style: models.StyleNormal,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
	assert.Nil(t, result, "no fallback text on generation failure")
}

func TestGenerateDefaultsModelAndWordCount(t *testing.T) {
	mock := &llm.MockProvider{Response: "one two three four five"}
	svc := newTestService(mock)

	result, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  "Trains are interesting.",
		Tone:  models.ToneNeutral,
		Style: models.StyleNormal,
	})
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", result.Response.Model)
	assert.Equal(t, 5, result.Response.WordCount)
	assert.Equal(t, int64(170), result.Usage.TotalTokens)
}

func TestGenerateResolverErrorSurfaced(t *testing.T) {
	svc := NewGenerationServiceWithResolver(&stubResolver{err: errors.New("no api key")}, "gemini-2.5-flash")

	_, err := svc.Generate(context.Background(), &models.UserRequest{
		Text:  "Hello there, world.",
		Tone:  models.ToneNeutral,
		Style: models.StyleNormal,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no api key")
}
