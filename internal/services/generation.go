package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Amanjha112113/ai-text-generator/internal/config"
	"github.com/Amanjha112113/ai-text-generator/internal/llm"
	"github.com/Amanjha112113/ai-text-generator/internal/logger"
	"github.com/Amanjha112113/ai-text-generator/internal/metrics"
	"github.com/Amanjha112113/ai-text-generator/internal/models"
	"github.com/Amanjha112113/ai-text-generator/internal/observability"
	"github.com/Amanjha112113/ai-text-generator/internal/prompt"
)

// Inputs shorter than this (after trimming) are classified neutral
// locally, without a remote call.
const minAutoDetectLength = 3

// ProviderResolver selects an LLM provider for a model name.
type ProviderResolver interface {
	GetProvider(ctx context.Context, model, providerName string) (llm.Provider, error)
}

// GenerationService orchestrates sentiment detection and text generation.
type GenerationService struct {
	providers    ProviderResolver
	builder      *prompt.Builder
	sentry       *metrics.SentryMetrics
	cloudwatch   *metrics.Client
	defaultModel string
}

// NewGenerationService creates a generation service from the app configuration
func NewGenerationService(cfg *config.Config, cw *metrics.Client) *GenerationService {
	return &GenerationService{
		providers:    llm.NewProviderFactory(cfg.GeminiAPIKey, cfg.OpenAIAPIKey),
		builder:      prompt.NewPromptBuilder(),
		sentry:       metrics.NewSentryMetrics(),
		cloudwatch:   cw,
		defaultModel: cfg.DefaultModel,
	}
}

// NewGenerationServiceWithResolver builds a service with a custom provider
// resolver. Used by tests to inject canned providers.
func NewGenerationServiceWithResolver(resolver ProviderResolver, defaultModel string) *GenerationService {
	return &GenerationService{
		providers:    resolver,
		builder:      prompt.NewPromptBuilder(),
		sentry:       metrics.NewSentryMetrics(),
		defaultModel: defaultModel,
	}
}

// Result bundles the generated response with the token usage consumed
// across sentiment detection and generation.
type Result struct {
	Response *models.GeneratedResponse
	Usage    llm.TokenUsage
}

// Generate runs the full pipeline for one user request: validation,
// sentiment resolution, prompt assembly and model generation.
//
// A generation failure is surfaced as an error with no fallback text.
func (s *GenerationService) Generate(ctx context.Context, req *models.UserRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	provider, err := s.providers.GetProvider(ctx, model, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider for model %s: %w", model, err)
	}

	trace := observability.GetClient().StartTrace(ctx, "text_generation", map[string]interface{}{
		"model": model,
		"tone":  string(req.Tone),
		"style": string(req.Style),
	})
	defer trace.Finish()

	startTime := time.Now()
	var totalUsage llm.TokenUsage

	sentiment, detected, detectUsage := s.resolveSentiment(ctx, provider, trace, model, req)
	addUsage(&totalUsage, detectUsage)

	userPrompt, err := s.builder.BuildGenerationPrompt(sentiment, req.Style, req.TargetWordCount(), req.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to build generation prompt: %w", err)
	}

	systemPrompt, err := s.builder.SystemPrompt()
	if err != nil {
		return nil, fmt.Errorf("failed to load system prompt: %w", err)
	}

	gen := trace.Generation("generation", map[string]interface{}{
		"sentiment": string(sentiment),
		"detected":  detected,
	})
	gen.Model(model)
	gen.Input(userPrompt)

	resp, err := provider.Generate(ctx, &llm.GenerationRequest{
		Model:        model,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	duration := time.Since(startTime)

	if err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()
		s.sentry.RecordGenerationDuration(ctx, duration, false)
		if s.cloudwatch != nil {
			s.cloudwatch.RecordGenerationDuration(duration, false)
		}
		logger.Error("Generation failed", err, logger.Fields{
			"model":     model,
			"sentiment": string(sentiment),
			"style":     string(req.Style),
		})
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	gen.Output(resp.Text)
	gen.Usage(model, resp.Usage)
	gen.Finish()
	addUsage(&totalUsage, resp.Usage)

	s.sentry.RecordTokenUsage(ctx, model, totalUsage.TotalTokens, totalUsage.InputTokens, totalUsage.OutputTokens)
	s.sentry.RecordGenerationDuration(ctx, duration, true)
	if s.cloudwatch != nil {
		s.cloudwatch.RecordTokenUsage(model, totalUsage.TotalTokens, totalUsage.InputTokens, totalUsage.OutputTokens)
		s.cloudwatch.RecordGenerationDuration(duration, true)
	}

	logger.Info("Generation completed", logger.Fields{
		"model":        model,
		"sentiment":    string(sentiment),
		"style":        string(req.Style),
		"duration_ms":  duration.Milliseconds(),
		"total_tokens": totalUsage.TotalTokens,
		"cost":         observability.FormatCost(observability.CalculateCost(model, totalUsage)),
	})

	return &Result{
		Response: &models.GeneratedResponse{
			Text:      resp.Text,
			Prompt:    req.Text,
			Sentiment: sentiment,
			Detected:  detected,
			Style:     req.Style,
			Model:     model,
			WordCount: models.CountWords(resp.Text),
			Duration:  duration,
		},
		Usage: totalUsage,
	}, nil
}

// resolveSentiment returns a concrete sentiment for the request. Explicit
// tones pass through. Auto-detection classifies via the provider with an
// enforced JSON schema, falling back to neutral when the input is too short
// or the classification fails. Detection never fails the request.
func (s *GenerationService) resolveSentiment(
	ctx context.Context,
	provider llm.Provider,
	trace *observability.Trace,
	model string,
	req *models.UserRequest,
) (models.Tone, bool, llm.TokenUsage) {
	var noUsage llm.TokenUsage

	if req.Tone != models.ToneAuto {
		return req.Tone, false, noUsage
	}

	if len(strings.TrimSpace(req.Text)) < minAutoDetectLength {
		return models.ToneNeutral, true, noUsage
	}

	gen := trace.Generation("sentiment_detection", nil)
	gen.Model(model)

	detectPrompt := s.builder.BuildSentimentPrompt(req.Text)
	gen.Input(detectPrompt)

	resp, err := provider.Generate(ctx, &llm.GenerationRequest{
		Model:        model,
		SystemPrompt: "You are a precise sentiment classifier.",
		UserPrompt:   detectPrompt,
		OutputSchema: llm.GetSentimentOutputSchema(),
	})
	if err != nil {
		gen.SetLevel("WARNING")
		gen.Finish()
		logger.Warn("Sentiment detection failed, falling back to neutral", logger.Fields{
			"model": model,
			"error": err.Error(),
		})
		return models.ToneNeutral, true, noUsage
	}

	gen.Output(resp.Text)
	gen.Usage(model, resp.Usage)
	gen.Finish()

	var result llm.SentimentResult
	if err := json.Unmarshal([]byte(resp.Text), &result); err != nil {
		logger.Warn("Sentiment detection returned malformed JSON, falling back to neutral", logger.Fields{
			"model": model,
			"error": err.Error(),
		})
		return models.ToneNeutral, true, resp.Usage
	}

	tone, err := models.ParseTone(result.Sentiment)
	if err != nil || !tone.Sentiment() {
		logger.Warn("Sentiment detection returned an unknown label, falling back to neutral", logger.Fields{
			"model": model,
			"label": result.Sentiment,
		})
		return models.ToneNeutral, true, resp.Usage
	}

	return tone, true, resp.Usage
}

func addUsage(total *llm.TokenUsage, usage llm.TokenUsage) {
	total.InputTokens += usage.InputTokens
	total.OutputTokens += usage.OutputTokens
	total.TotalTokens += usage.TotalTokens
}
