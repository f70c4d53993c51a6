package models

import (
	"errors"
	"testing"
)

func TestParseTone(t *testing.T) {
	cases := []struct {
		input   string
		want    Tone
		wantErr bool
	}{
		{"", ToneAuto, false},
		{"auto", ToneAuto, false},
		{"Auto", ToneAuto, false},
		{"positive", TonePositive, false},
		{"NEGATIVE", ToneNegative, false},
		{" neutral ", ToneNeutral, false},
		{"happy", "", true},
	}

	for _, tc := range cases {
		got, err := ParseTone(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTone(%q) expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTone(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTone(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseStyleMode(t *testing.T) {
	cases := []struct {
		input   string
		want    StyleMode
		wantErr bool
	}{
		{"", StyleNormal, false},
		{"normal", StyleNormal, false},
		{"eli10", StyleELI10, false},
		{"ELI10 (Fun & Emojis)", StyleELI10, false},
		{"shakespearean", "", true},
	}

	for _, tc := range cases {
		got, err := ParseStyleMode(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStyleMode(%q) expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStyleMode(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStyleMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestToneSentiment(t *testing.T) {
	if ToneAuto.Sentiment() {
		t.Error("auto should not count as a concrete sentiment")
	}
	for _, tone := range []Tone{TonePositive, ToneNegative, ToneNeutral} {
		if !tone.Sentiment() {
			t.Errorf("%s should count as a concrete sentiment", tone)
		}
	}
}

func TestUserRequestValidate(t *testing.T) {
	valid := UserRequest{Text: "hello world", Tone: ToneAuto, Style: StyleNormal}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request failed validation: %v", err)
	}

	empty := UserRequest{Text: "   ", Tone: ToneAuto, Style: StyleNormal}
	if err := empty.Validate(); !errors.Is(err, ErrEmptyText) {
		t.Errorf("whitespace-only text: got %v, want ErrEmptyText", err)
	}

	badWords := UserRequest{Text: "hello", Tone: ToneNeutral, Style: StyleNormal, WordCount: 10}
	if err := badWords.Validate(); !errors.Is(err, ErrInvalidWordCount) {
		t.Errorf("word count below minimum: got %v, want ErrInvalidWordCount", err)
	}

	badWords.WordCount = 1000
	if err := badWords.Validate(); !errors.Is(err, ErrInvalidWordCount) {
		t.Errorf("word count above maximum: got %v, want ErrInvalidWordCount", err)
	}

	badStyle := UserRequest{Text: "hello", Tone: ToneNeutral, Style: "haiku"}
	if err := badStyle.Validate(); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("unknown style: got %v, want ErrInvalidStyle", err)
	}
}

func TestTargetWordCount(t *testing.T) {
	req := UserRequest{Text: "hi there"}
	if got := req.TargetWordCount(); got != WordCountDefault {
		t.Errorf("TargetWordCount() default = %d, want %d", got, WordCountDefault)
	}

	req.WordCount = 350
	if got := req.TargetWordCount(); got != 350 {
		t.Errorf("TargetWordCount() = %d, want 350", got)
	}
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  spaced   out\nwords\ttoo ", 4},
	}

	for _, tc := range cases {
		if got := CountWords(tc.input); got != tc.want {
			t.Errorf("CountWords(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
