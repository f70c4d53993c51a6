package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Tone is the sentiment applied to shape the generated text.
type Tone string

const (
	ToneAuto     Tone = "auto"
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// StyleMode selects the writing register of the generated text.
type StyleMode string

const (
	// StyleNormal is a formal, professional register without jokes or emojis.
	StyleNormal StyleMode = "normal"
	// StyleELI10 explains like the reader is ten years old, with jokes and emojis.
	StyleELI10 StyleMode = "eli10"
)

// Word count bounds match the range offered by the UI slider.
const (
	WordCountMin     = 50
	WordCountMax     = 500
	WordCountDefault = 200
)

var (
	ErrEmptyText        = errors.New("text is required")
	ErrInvalidTone      = errors.New("invalid tone: allowed values are auto, positive, negative, neutral")
	ErrInvalidStyle     = errors.New("invalid style: allowed values are normal, eli10")
	ErrInvalidWordCount = fmt.Errorf("word_count must be between %d and %d", WordCountMin, WordCountMax)
)

// ParseTone normalizes a tone string. The empty string means auto-detect.
func ParseTone(s string) (Tone, error) {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case "", ToneAuto:
		return ToneAuto, nil
	case TonePositive:
		return TonePositive, nil
	case ToneNegative:
		return ToneNegative, nil
	case ToneNeutral:
		return ToneNeutral, nil
	default:
		return "", ErrInvalidTone
	}
}

// ParseStyleMode normalizes a style string. The UI historically sent labels
// like "ELI10 (Fun & Emojis)", so anything containing "eli10" counts.
func ParseStyleMode(s string) (StyleMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch {
	case normalized == "" || normalized == string(StyleNormal):
		return StyleNormal, nil
	case strings.Contains(normalized, string(StyleELI10)):
		return StyleELI10, nil
	default:
		return "", ErrInvalidStyle
	}
}

// Sentiment returns true if the tone is a concrete sentiment (not auto).
func (t Tone) Sentiment() bool {
	return t == TonePositive || t == ToneNegative || t == ToneNeutral
}

// UserRequest is a single generation request. It lives for the duration of
// one HTTP request and is never persisted.
type UserRequest struct {
	Text      string
	Tone      Tone
	Style     StyleMode
	WordCount int
	Model     string
}

// Validate checks the request before any remote call is made.
// Empty text must fail here so the provider is never contacted.
func (r *UserRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if r.Tone != ToneAuto && !r.Tone.Sentiment() {
		return ErrInvalidTone
	}
	if r.Style != StyleNormal && r.Style != StyleELI10 {
		return ErrInvalidStyle
	}
	if r.WordCount != 0 && (r.WordCount < WordCountMin || r.WordCount > WordCountMax) {
		return ErrInvalidWordCount
	}
	return nil
}

// TargetWordCount returns the requested word count, falling back to the default.
func (r *UserRequest) TargetWordCount() int {
	if r.WordCount == 0 {
		return WordCountDefault
	}
	return r.WordCount
}

// GeneratedResponse holds the model output for one request. It is kept in
// memory only for rendering and export.
type GeneratedResponse struct {
	Text      string
	Prompt    string // the original user text, echoed for display/export
	Sentiment Tone   // resolved sentiment (never auto)
	Detected  bool   // true when the sentiment came from auto-detection
	Style     StyleMode
	Model     string
	WordCount int // approximate word count of the generated text
	Duration  time.Duration
}

// CountWords returns the whitespace-separated word count of s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
