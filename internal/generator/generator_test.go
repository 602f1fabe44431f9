package generator

import (
	"context"
	"strings"
	"testing"
)

func TestTemplateGenerate(t *testing.T) {
	gen := Template{}

	tests := []struct {
		name        string
		description string
		wantPrefix  string
	}{
		{
			name:        "description is kept in the caption",
			description: "New spring facial",
			wantPrefix:  "New spring facial",
		},
		{
			name:        "empty description gets the fallback opener",
			description: "",
			wantPrefix:  "Check out our latest work!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, hashtags, err := gen.Generate(context.Background(), tt.description)
			if err != nil {
				t.Fatalf("Template.Generate() error = %v", err)
			}
			if !strings.HasPrefix(content, tt.wantPrefix) {
				t.Errorf("content = %q, want prefix %q", content, tt.wantPrefix)
			}
			if content == "" || hashtags == "" {
				t.Error("template output must be non-empty")
			}
			if !strings.HasPrefix(hashtags, "#") {
				t.Errorf("hashtags = %q, want leading #", hashtags)
			}
		})
	}
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json",
			input:    `{"content":"hi"}`,
			expected: `{"content":"hi"}`,
		},
		{
			name:     "fenced json",
			input:    "```json\n{\"content\":\"hi\"}\n```",
			expected: `{"content":"hi"}`,
		},
		{
			name:     "fenced without language",
			input:    "```\n{\"content\":\"hi\"}\n```",
			expected: `{"content":"hi"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  {\"content\":\"hi\"}  ",
			expected: `{"content":"hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSON(tt.input); got != tt.expected {
				t.Errorf("cleanJSON(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
