package prompt

import (
	"fmt"
	"strings"

	"github.com/Amanjha112113/ai-text-generator/internal/models"
	"github.com/Amanjha112113/ai-text-generator/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetSystemPrompt loads the main system prompt
func (l *Loader) GetSystemPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.SystemPromptTxt)), nil
}

// GetBaseInstructions loads the base generation instructions template
func (l *Loader) GetBaseInstructions() (string, error) {
	return strings.TrimSpace(string(embedded.BaseInstructionsTxt)), nil
}

// GetStyleInstructions loads the style-specific instruction block
func (l *Loader) GetStyleInstructions(style models.StyleMode) (string, error) {
	switch style {
	case models.StyleELI10:
		return strings.TrimSpace(string(embedded.ELI10StyleInstructionsTxt)), nil
	case models.StyleNormal:
		return strings.TrimSpace(string(embedded.NormalStyleInstructionsTxt)), nil
	default:
		return "", fmt.Errorf("no style instructions for style %q", style)
	}
}

// GetExamples loads the few-shot example block for a (style, sentiment) pair
func (l *Loader) GetExamples(style models.StyleMode, sentiment models.Tone) (string, error) {
	var data []byte
	switch style {
	case models.StyleELI10:
		switch sentiment {
		case models.TonePositive:
			data = embedded.ELI10PositiveExamplesTxt
		case models.ToneNegative:
			data = embedded.ELI10NegativeExamplesTxt
		default:
			data = embedded.ELI10NeutralExamplesTxt
		}
	case models.StyleNormal:
		switch sentiment {
		case models.TonePositive:
			data = embedded.NormalPositiveExamplesTxt
		case models.ToneNegative:
			data = embedded.NormalNegativeExamplesTxt
		default:
			data = embedded.NormalNeutralExamplesTxt
		}
	default:
		return "", fmt.Errorf("no examples for style %q", style)
	}
	return strings.TrimSpace(string(data)), nil
}
