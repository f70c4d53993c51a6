package handlers

import (
	"net/http"

	"github.com/Amanjha112113/ai-text-generator/pkg/embedded"
	"github.com/gin-gonic/gin"
)

// WebHandler serves the embedded single-page UI
type WebHandler struct{}

// NewWebHandler creates a new web handler
func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

// Home serves the generator page
func (h *WebHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", embedded.IndexHTML)
}
