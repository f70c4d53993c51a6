package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Amanjha112113/ai-text-generator/internal/export"
	"github.com/Amanjha112113/ai-text-generator/internal/metrics"
	"github.com/Amanjha112113/ai-text-generator/internal/models"
	"github.com/gin-gonic/gin"
)

// ExportHandler turns generated text into downloadable files
type ExportHandler struct {
	cloudwatch *metrics.Client
}

// NewExportHandler creates a new export handler
func NewExportHandler(cw *metrics.Client) *ExportHandler {
	return &ExportHandler{cloudwatch: cw}
}

// ExportRequest is the JSON body for POST /api/v1/exports
type ExportRequest struct {
	Format    string `json:"format"`
	Text      string `json:"text"`
	Prompt    string `json:"prompt"`
	Sentiment string `json:"sentiment"`
	Style     string `json:"style"`
}

// Export renders the generated text in the requested format and streams
// it back as an attachment
func (h *ExportHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	formatter, err := export.NewFormatter(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sentiment := req.Sentiment
	if sentiment == "" {
		sentiment = string(models.ToneNeutral)
	}
	style := req.Style
	if style == "" {
		style = string(models.StyleNormal)
	}

	now := time.Now()
	doc := export.Document{
		Title:     "Generated Text",
		Prompt:    req.Prompt,
		Sentiment: sentiment,
		Style:     style,
		Body:      req.Text,
		WordCount: models.CountWords(req.Text),
		CreatedAt: now,
	}

	data, err := formatter.Format(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Export failed: " + err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}

	if h.cloudwatch != nil {
		h.cloudwatch.RecordExport(formatter.Extension())
	}

	filename := export.Filename(sentiment, style, formatter.Extension(), now)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, formatter.ContentType(), data)
}
