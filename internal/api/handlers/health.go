package handlers

import (
	"net/http"

	"github.com/Amanjha112113/ai-text-generator/internal/config"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and provider availability
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	providerStatus := func(key string) string {
		if key != "" {
			return "configured"
		}
		return "not_configured"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"providers": gin.H{
			"gemini": providerStatus(h.cfg.GeminiAPIKey),
			"openai": providerStatus(h.cfg.OpenAIAPIKey),
		},
		"default_model": h.cfg.DefaultModel,
	})
}
