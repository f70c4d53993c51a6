package prompt

import (
	"fmt"
	"strings"

	"github.com/Amanjha112113/ai-text-generator/internal/models"
)

// Builder builds the sentiment-classification and generation prompts.
type Builder struct {
	loader *Loader
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	return &Builder{
		loader: NewPromptLoader(),
	}
}

// Word-count threshold where the prompt switches from asking for a
// paragraph to asking for a short essay.
const essayWordThreshold = 150

// Sentiment-specific flair appended in ELI10 style.
var eli10Flair = map[models.Tone]string{
	models.TonePositive: "Add 3-5 fun jokes or puns to make it hilarious, and sprinkle in lots of excited emojis (like 😄, 🚀, 🎉) throughout to amp up the joy!",
	models.ToneNegative: "Weave in 2-3 dark humor jokes or ironic twists to heighten the gloom, and use grumpy/sad emojis (like 😞, 🌧️, 💔) to match the vibe.",
	models.ToneNeutral:  "Keep it balanced with 2-3 light, observational jokes if they fit naturally, and add neutral emojis (like 📖, 🌤️, 🤔) sparingly for visual pop.",
}

// BuildSentimentPrompt builds the classification prompt for auto-detection.
// The JSON output shape is enforced separately via the provider's output schema.
func (b *Builder) BuildSentimentPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Classify the sentiment of the following text as exactly one of: positive, negative, neutral.\n\n")
	sb.WriteString("Text: ")
	sb.WriteString(text)
	return sb.String()
}

// BuildGenerationPrompt builds the full generation prompt for a resolved
// sentiment (never auto). The original text always appears verbatim.
func (b *Builder) BuildGenerationPrompt(sentiment models.Tone, style models.StyleMode, wordCount int, original string) (string, error) {
	if !sentiment.Sentiment() {
		return "", fmt.Errorf("sentiment must be resolved before building the generation prompt, got %q", sentiment)
	}

	base, err := b.loader.GetBaseInstructions()
	if err != nil {
		return "", err
	}

	form := "paragraph"
	if wordCount >= essayWordThreshold {
		form = "short essay"
	}

	styleBlock, err := b.loader.GetStyleInstructions(style)
	if err != nil {
		return "", err
	}

	examples, err := b.loader.GetExamples(style, sentiment)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(base, form, sentiment, wordCount))
	sb.WriteString("\n")
	sb.WriteString(styleBlock)
	if style == models.StyleELI10 {
		sb.WriteString("\n- ")
		sb.WriteString(eli10Flair[sentiment])
	}
	sb.WriteString("\n\nExamples:\n")
	sb.WriteString(examples)
	sb.WriteString("\n\nOriginal Prompt: ")
	sb.WriteString(original)

	return sb.String(), nil
}

// SystemPrompt returns the system instruction sent with every generation.
func (b *Builder) SystemPrompt() (string, error) {
	return b.loader.GetSystemPrompt()
}
