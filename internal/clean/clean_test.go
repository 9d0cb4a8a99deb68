package clean

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestContent_CutoffPatterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "related articles cuts to end",
			input: "The actual story body.\n\nRelated articles\nSome other headline\nAnother headline",
			want:  "The actual story body.",
		},
		{
			name:  "topics heading cuts to end",
			input: "Body paragraph one.\n\n### Topics\nAI\nRegulation",
			want:  "Body paragraph one.",
		},
		{
			name:  "more from publication cuts to end",
			input: "Real content here.\nMore from TechCrunch\nStory A\nStory B",
			want:  "Real content here.",
		},
		{
			name:  "newsletter signup cuts to end",
			input: "Paragraph.\nSign up for our daily briefing\nEmail: ...",
			want:  "Paragraph.",
		},
		{
			name:  "comments section cuts to end",
			input: "Closing paragraph.\nComments\nFirst!",
			want:  "Closing paragraph.",
		},
		{
			name:  "earlier pattern preempts later one",
			input: "Body.\n\n## Topics\nstuff\nRelated articles\nmore stuff",
			want:  "Body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Content(tt.input))
		})
	}
}

func TestContent_LineJunk(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		absent  []string
		present []string
	}{
		{
			name:    "advertisement lines removed anywhere",
			input:   "First paragraph.\nAdvertisement\nSecond paragraph.",
			absent:  []string{"Advertisement"},
			present: []string{"First paragraph.", "Second paragraph."},
		},
		{
			name:    "copyright and rights lines removed",
			input:   "Story text.\n© 2026 Example Media\nAll rights reserved worldwide.",
			absent:  []string{"© 2026", "rights reserved"},
			present: []string{"Story text."},
		},
		{
			name:    "image credit removed",
			input:   "Story text.\nPhoto: Getty Images via AFP\nMore story text.",
			absent:  []string{"Getty Images"},
			present: []string{"Story text.", "More story text."},
		},
		{
			name:    "bare taxonomy and company lines removed",
			input:   "Real sentence.\nFintech\nMicrosoft\nAnother real sentence.",
			absent:  []string{"\nFintech\n", "\nMicrosoft\n"},
			present: []string{"Real sentence.", "Another real sentence."},
		},
		{
			name:    "javascript link markup removed",
			input:   "Check [this](javascript:void(0)) sentence.",
			absent:  []string{"javascript:"},
			present: []string{"Check", "sentence."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Content(tt.input)
			for _, s := range tt.absent {
				assert.NotContains(t, got, s)
			}
			for _, s := range tt.present {
				assert.Contains(t, got, s)
			}
		})
	}
}

func TestContent_CollapsesWhitespace(t *testing.T) {
	got := Content("para one\n\n\n\n\npara two\n\n")
	assert.Equal(t, "para one\n\npara two", got)
}

func TestContent_Truncation(t *testing.T) {
	long := strings.Repeat("a", 12000)
	got := Content(long)

	assert.Len(t, got, MaxContentLength+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestContent_TruncatesOnRuneBoundary(t *testing.T) {
	// Korean content straddling the cap must not be cut mid-character.
	long := strings.Repeat("a", MaxContentLength-1) + strings.Repeat("가", 10)
	got := Content(long)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, MaxContentLength+3, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "가..."))
}

func TestContent_LengthBound(t *testing.T) {
	inputs := []string{
		"",
		"short",
		strings.Repeat("word ", 3000),
		strings.Repeat("line\n", 5000),
	}
	for _, in := range inputs {
		assert.LessOrEqual(t, len(Content(in)), MaxContentLength+3)
	}
}

func TestContent_Idempotent(t *testing.T) {
	inputs := []string{
		"Plain article text with two paragraphs.\n\nSecond paragraph here.",
		"Body.\nAdvertisement\nTail.\nRelated articles\njunk",
		strings.Repeat("long body text ", 1000),
	}
	for _, in := range inputs {
		once := Content(in)
		assert.Equal(t, once, Content(once))
	}
}

func TestContent_EverythingStripped(t *testing.T) {
	// Cutoff at the very start leaves an empty string; that is valid output.
	got := Content("Related articles\nOne\nTwo")
	assert.Equal(t, "", got)
}
