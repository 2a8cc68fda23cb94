package logger

import "testing"

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{
		"provider", "gemini",
		"openai_api_key", "sk-live",
		"input_tokens", 42,
		"dangling",
	})

	want := []interface{}{
		"provider", "gemini",
		"openai_api_key", "[REDACTED]",
		"input_tokens", 42,
		"dangling",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := Nop().With("session", "abc")
	l.Info("hello", "k", "v")
	l.Sync()
}
