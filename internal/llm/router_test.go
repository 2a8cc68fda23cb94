package llm

import (
	"context"
	"errors"
	"testing"
)

func TestRouter_PreferredSucceeds(t *testing.T) {
	gemini := NewMockProvider(MockResponse{Text: "  from gemini \n"})
	openai := NewMockProvider(MockResponse{Text: "from openai"})
	r := NewRouter(map[Kind]Provider{KindGemini: gemini, KindOpenAI: openai}, nil)

	text, err := r.Call(context.Background(), "prompt", "system", KindGemini)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "from gemini" {
		t.Fatalf("expected trimmed gemini text, got %q", text)
	}
	if openai.CallCount() != 0 {
		t.Fatalf("fallback must not be called, got %d calls", openai.CallCount())
	}

	req := gemini.Calls[0]
	if req.System != "system" || len(req.Messages) != 1 || req.Messages[0].Content != "prompt" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestRouter_EmptyTextFallsBackOnce(t *testing.T) {
	openai := NewMockProvider(MockResponse{Text: "   "})
	gemini := NewMockProvider(MockResponse{Text: "from gemini"})
	r := NewRouter(map[Kind]Provider{KindGemini: gemini, KindOpenAI: openai}, nil)

	text, err := r.Call(context.Background(), "p", "s", KindOpenAI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "from gemini" {
		t.Fatalf("expected fallback text, got %q", text)
	}
	if openai.CallCount() != 1 || gemini.CallCount() != 1 {
		t.Fatalf("expected one call each, got openai=%d gemini=%d", openai.CallCount(), gemini.CallCount())
	}
}

func TestRouter_ErrorFallsBack(t *testing.T) {
	gemini := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	openai := NewMockProvider(MockResponse{Text: "from openai"})
	r := NewRouter(map[Kind]Provider{KindGemini: gemini, KindOpenAI: openai}, nil)

	text, err := r.Call(context.Background(), "p", "s", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "from openai" {
		t.Fatalf("expected openai text, got %q", text)
	}
}

func TestRouter_BothFail(t *testing.T) {
	gemini := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	openai := NewMockProvider(MockResponse{Text: ""})
	r := NewRouter(map[Kind]Provider{KindGemini: gemini, KindOpenAI: openai}, nil)

	text, err := r.Call(context.Background(), "a long prompt that must not be echoed back", "s", KindGemini)
	if text != "" {
		t.Fatalf("expected no text on total failure, got %q", text)
	}
	var all *ErrAllProvidersFailed
	if !errors.As(err, &all) {
		t.Fatalf("expected ErrAllProvidersFailed, got %T (%v)", err, err)
	}
	if len(all.Errs) != 2 {
		t.Fatalf("expected both causes, got %d", len(all.Errs))
	}
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatal("expected the empty-response cause to be reachable")
	}
	if gemini.CallCount() != 1 || openai.CallCount() != 1 {
		t.Fatalf("expected exactly one attempt each, got gemini=%d openai=%d", gemini.CallCount(), openai.CallCount())
	}
}

func TestRouter_PreferredUnconfiguredFailsFast(t *testing.T) {
	gemini := NewMockProvider(MockResponse{Text: "unused"})
	r := NewRouter(map[Kind]Provider{KindGemini: gemini}, nil)

	_, err := r.Call(context.Background(), "p", "s", KindOpenAI)
	var cfgErr *ErrConfig
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ErrConfig, got %T (%v)", err, err)
	}
	if cfgErr.EnvVar != EnvOpenAIKey {
		t.Fatalf("expected %s in error, got %q", EnvOpenAIKey, cfgErr.EnvVar)
	}
	if gemini.CallCount() != 0 {
		t.Fatal("configuration errors must not trigger a fallback")
	}
}

func TestRouter_FallbackUnconfigured(t *testing.T) {
	gemini := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	r := NewRouter(map[Kind]Provider{KindGemini: gemini}, nil)

	_, err := r.Call(context.Background(), "p", "s", KindGemini)
	var all *ErrAllProvidersFailed
	if !errors.As(err, &all) {
		t.Fatalf("expected ErrAllProvidersFailed, got %T (%v)", err, err)
	}
	var cfgErr *ErrConfig
	if !errors.As(err, &cfgErr) {
		t.Fatal("expected the missing credential to be reported")
	}
}

func TestRouter_UnknownKind(t *testing.T) {
	r := NewRouter(nil, nil)
	if _, err := r.Call(context.Background(), "p", "s", Kind("claude")); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestRouter_ContextCanceledDoesNotFallBack(t *testing.T) {
	gemini := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: context.Canceled}})
	openai := NewMockProvider(MockResponse{Text: "unused"})
	r := NewRouter(map[Kind]Provider{KindGemini: gemini, KindOpenAI: openai}, nil)

	_, err := r.Call(context.Background(), "p", "s", KindGemini)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if openai.CallCount() != 0 {
		t.Fatal("canceled calls must not fall back")
	}
}

func TestNewRouterFromConfig_RequiresCredentials(t *testing.T) {
	_, err := NewRouterFromConfig(context.Background(), DefaultConfig(), nil, nil)
	if err == nil {
		t.Fatal("expected validation error without credentials")
	}
}
