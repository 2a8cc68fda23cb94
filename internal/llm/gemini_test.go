package llm

import (
	"context"
	"errors"
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-flash-latest"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "Summarize this."},
		{Role: RoleAssistant, Content: "Here is a summary."},
	})

	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Errorf("expected role user, got %q", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Errorf("expected role model, got %q", contents[1].Role)
	}
	if contents[0].Parts[0].Text != "Summarize this." {
		t.Errorf("unexpected text %q", contents[0].Parts[0].Text)
	}
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"})
	var cfgErr *ErrConfig
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ErrConfig, got: %T (%v)", err, err)
	}
	if cfgErr.Provider != KindGemini || cfgErr.EnvVar != EnvGeminiKey {
		t.Fatalf("unexpected config error %+v", cfgErr)
	}
}
