package export

import (
	"fmt"
	"strings"
	"time"
)

// Document is a generated text plus the metadata rendered into exports.
type Document struct {
	Title     string
	Prompt    string
	Sentiment string
	Style     string
	Body      string
	WordCount int
	CreatedAt time.Time
}

// Formatter renders a Document into a downloadable byte stream.
type Formatter interface {
	Format(doc Document) ([]byte, error)
	ContentType() string
	Extension() string
}

// NewFormatter returns the formatter for the given format name.
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "txt", "text":
		return &TextFormatter{}, nil
	case "pdf":
		return &PDFFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s (allowed: pdf, txt)", format)
	}
}

// Filename builds the download filename for an export.
func Filename(sentiment, style string, ext string, t time.Time) string {
	return fmt.Sprintf("sentiment_text_%s_%s_%s.%s",
		strings.ToLower(sentiment),
		strings.ToLower(style),
		t.Format("20060102_150405"),
		ext,
	)
}
