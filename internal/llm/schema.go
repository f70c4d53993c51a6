package llm

// Sentiment labels the model is allowed to return during classification.
var sentimentEnum = []string{"positive", "negative", "neutral"}

// SentimentResult is the parsed shape of a sentiment classification response.
type SentimentResult struct {
	Sentiment string `json:"sentiment"`
}

// GetSentimentOutputSchema returns the JSON schema enforced during sentiment
// auto-detection. Constraining the output to a single enum field keeps
// parsing reliable across providers.
func GetSentimentOutputSchema() *OutputSchema {
	return &OutputSchema{
		Name:        "sentiment_classification",
		Description: "Sentiment label for a piece of text",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sentiment": map[string]any{
					"type": "string",
					"enum": sentimentEnum,
				},
			},
			"required":             []string{"sentiment"},
			"additionalProperties": false,
		},
	}
}
