package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestConvertSchemaToGeminiSentiment(t *testing.T) {
	schema := GetSentimentOutputSchema()

	converted := convertSchemaToGemini(schema.Schema)

	require.Equal(t, genai.TypeObject, converted.Type)
	require.Contains(t, converted.Properties, "sentiment")
	assert.Equal(t, []string{"sentiment"}, converted.Required)

	sentiment := converted.Properties["sentiment"]
	assert.Equal(t, genai.TypeString, sentiment.Type)
	assert.Equal(t, []string{"positive", "negative", "neutral"}, sentiment.Enum)
}

func TestConvertSchemaToGeminiScalarTypes(t *testing.T) {
	cases := map[string]genai.Type{
		"integer": genai.TypeInteger,
		"number":  genai.TypeNumber,
		"boolean": genai.TypeBoolean,
		"string":  genai.TypeString,
	}

	for jsonType, want := range cases {
		converted := convertSchemaToGemini(map[string]any{"type": jsonType})
		assert.Equal(t, want, converted.Type, "type %s", jsonType)
	}
}

func TestConvertSchemaToGeminiArray(t *testing.T) {
	converted := convertSchemaToGemini(map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	})

	require.Equal(t, genai.TypeArray, converted.Type)
	require.NotNil(t, converted.Items)
	assert.Equal(t, genai.TypeString, converted.Items.Type)
}
