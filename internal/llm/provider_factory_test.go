package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProviderInfersOpenAIFromModel(t *testing.T) {
	factory := NewProviderFactory("gemini-key", "openai-key")

	provider, err := factory.GetProvider(context.Background(), "gpt-5-mini", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider.Name())
}

func TestGetProviderDefaultsToGemini(t *testing.T) {
	factory := NewProviderFactory("gemini-key", "openai-key")

	provider, err := factory.GetProvider(context.Background(), "gemini-2.5-flash", "")
	require.NoError(t, err)
	assert.Equal(t, "gemini", provider.Name())
}

func TestGetProviderExplicitName(t *testing.T) {
	factory := NewProviderFactory("gemini-key", "openai-key")

	provider, err := factory.GetProvider(context.Background(), "gemini-2.5-flash", "openai")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider.Name())
}

func TestGetProviderUnknownName(t *testing.T) {
	factory := NewProviderFactory("gemini-key", "openai-key")

	_, err := factory.GetProvider(context.Background(), "gemini-2.5-flash", "anthropic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestGetProviderMissingKeys(t *testing.T) {
	factory := NewProviderFactory("", "")

	_, err := factory.GetProvider(context.Background(), "gemini-2.5-flash", "")
	require.Error(t, err)

	_, err = factory.GetProvider(context.Background(), "gpt-5-mini", "")
	require.Error(t, err)
}
