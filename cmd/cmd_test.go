package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/insightmentor/insightmentor/internal/store"
)

// run executes the root command with args against a temp database.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("INSIGHT_SESSION_BACKEND", "sqlite")
	t.Setenv("INSIGHT_LLM_PROVIDER", "")
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	args = append(args,
		"--db", filepath.Join(dir, "test.db"),
		"--env-file", filepath.Join(dir, "missing.env"),
	)
	return execute(args...)
}

// execute runs the root command with args exactly as given.
func execute(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "insightmentor ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPrompts(t *testing.T) {
	out, err := run(t, "prompts", "Nursing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "NCLEX-style questions") {
		t.Errorf("expected nursing prompts, got:\n%s", out)
	}
}

func TestSessionList_Empty(t *testing.T) {
	out, err := run(t, "session", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No sessions found.") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSessionShow_Unknown(t *testing.T) {
	if _, err := run(t, "session", "show", "does-not-exist"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestLLMStats_Empty(t *testing.T) {
	out, err := run(t, "llm", "stats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No LLM usage recorded yet.") {
		t.Errorf("unexpected output %q", out)
	}
}

// seedEvents writes one LLM event per purpose into the database at path.
func seedEvents(t *testing.T, path string, purposes ...string) {
	t.Helper()
	s, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	for _, p := range purposes {
		err := s.EventRepo().AppendLLMRequest(context.Background(), store.LLMRequestEventData{
			Provider: "gemini", Model: "gemini-flash-latest", Purpose: p, Success: true,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestLLMCommands_UseDBFromEnvFile(t *testing.T) {
	t.Setenv("INSIGHT_SESSION_BACKEND", "sqlite")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("XDG_DATA_HOME", filepath.Join(t.TempDir(), "xdg"))
	t.Setenv("INSIGHT_DB", "")
	os.Unsetenv("INSIGHT_DB")

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "fromenv.db")
	seedEvents(t, dbPath, "summary", "concepts")

	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte("INSIGHT_DB="+dbPath+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute("llm", "stats", "--db", "", "--env-file", envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "No LLM usage recorded yet.") {
		t.Fatalf("stats read the wrong database:\n%s", out)
	}
	if !strings.Contains(out, "concepts") || !strings.Contains(out, "summary") {
		t.Errorf("expected both purposes in stats, got:\n%s", out)
	}
}

func TestLLMList_FiltersByPurpose(t *testing.T) {
	t.Setenv("INSIGHT_SESSION_BACKEND", "sqlite")
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "events.db")
	seedEvents(t, dbPath, "summary", "concepts", "summary", "flashcards")

	// Flag values persist on the shared command between runs.
	t.Cleanup(func() {
		llmListCmd.Flags().Set("purpose", "")
		llmListCmd.Flags().Set("limit", "20")
	})

	out, err := execute("llm", "list", "--purpose", "summary", "--limit", "1",
		"--db", dbPath, "--env-file", filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out, "summary"); got != 1 {
		t.Errorf("expected one summary row, got %d:\n%s", got, out)
	}
	if strings.Contains(out, "concepts") || strings.Contains(out, "flashcards") {
		t.Errorf("other purposes leaked into the list:\n%s", out)
	}
}

func TestReadMaterial_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("# Cells\nMitochondria produce ATP."), 0o600); err != nil {
		t.Fatal(err)
	}
	text, err := readMaterial(analyzeCmd, []string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Mitochondria") {
		t.Errorf("unexpected text %q", text)
	}
}

func TestReadMaterial_Stdin(t *testing.T) {
	analyzeCmd.SetIn(strings.NewReader("piped notes"))
	t.Cleanup(func() { analyzeCmd.SetIn(nil) })

	text, err := readMaterial(analyzeCmd, []string{"-"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "piped notes" {
		t.Errorf("unexpected text %q", text)
	}
}
