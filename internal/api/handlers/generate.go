package handlers

import (
	"errors"
	"net/http"

	"github.com/Amanjha112113/ai-text-generator/internal/models"
	"github.com/Amanjha112113/ai-text-generator/internal/services"
	"github.com/gin-gonic/gin"
)

// GenerationHandler handles text generation requests
type GenerationHandler struct {
	service *services.GenerationService
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(service *services.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// GenerateRequest is the JSON body for POST /api/v1/generations
type GenerateRequest struct {
	Text      string `json:"text"`
	Tone      string `json:"tone"`
	Style     string `json:"style"`
	WordCount int    `json:"word_count"`
	Model     string `json:"model"`
}

// GenerateResponse is the JSON body returned on success
type GenerateResponse struct {
	RequestID  string         `json:"request_id"`
	Text       string         `json:"text"`
	Prompt     string         `json:"prompt"`
	Sentiment  string         `json:"sentiment"`
	Detected   bool           `json:"detected"`
	Style      string         `json:"style"`
	Model      string         `json:"model"`
	WordCount  int            `json:"word_count"`
	DurationMS int64          `json:"duration_ms"`
	Usage      map[string]any `json:"usage"`
}

// Generate runs the sentiment-aligned generation pipeline for one request
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	tone, err := models.ParseTone(req.Tone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	style, err := models.ParseStyleMode(req.Style)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userReq := &models.UserRequest{
		Text:      req.Text,
		Tone:      tone,
		Style:     style,
		WordCount: req.WordCount,
		Model:     req.Model,
	}

	result, err := h.service.Generate(c.Request.Context(), userReq)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      "Generation failed: " + err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}

	resp := result.Response
	c.JSON(http.StatusOK, GenerateResponse{
		RequestID:  c.GetString("request_id"),
		Text:       resp.Text,
		Prompt:     resp.Prompt,
		Sentiment:  string(resp.Sentiment),
		Detected:   resp.Detected,
		Style:      string(resp.Style),
		Model:      resp.Model,
		WordCount:  resp.WordCount,
		DurationMS: resp.Duration.Milliseconds(),
		Usage: map[string]any{
			"input_tokens":  result.Usage.InputTokens,
			"output_tokens": result.Usage.OutputTokens,
			"total_tokens":  result.Usage.TotalTokens,
		},
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrEmptyText) ||
		errors.Is(err, models.ErrInvalidTone) ||
		errors.Is(err, models.ErrInvalidStyle) ||
		errors.Is(err, models.ErrInvalidWordCount)
}
