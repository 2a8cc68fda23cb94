package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/insightmentor/insightmentor/internal/logger"
	"github.com/insightmentor/insightmentor/internal/store"
)

// Router sends single-turn prompts to the preferred backend and falls back
// to the other backend exactly once when the first attempt yields no text.
type Router struct {
	providers   map[Kind]Provider
	defaultKind Kind
	temperature float64
	log         *logger.Logger
}

// NewRouter builds a Router over the given providers. Kinds missing from
// the map are installed as unconfigured providers.
func NewRouter(providers map[Kind]Provider, log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	r := &Router{
		providers:   make(map[Kind]Provider, len(Kinds)),
		defaultKind: DefaultKind,
		temperature: DefaultConfig().Temperature,
		log:         log,
	}
	for _, k := range Kinds {
		if p, ok := providers[k]; ok && p != nil {
			r.providers[k] = p
		} else {
			r.providers[k] = unconfiguredProvider{kind: k}
		}
	}
	return r
}

// NewRouterFromConfig creates both backends from configuration and wraps
// each configured one with event logging. events may be nil.
func NewRouterFromConfig(ctx context.Context, cfg Config, events store.EventRepo, log *logger.Logger) (*Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	providers := make(map[Kind]Provider, len(Kinds))

	if cfg.Configured(KindOpenAI) {
		p, err := NewOpenAIProvider(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai provider: %w", err)
		}
		providers[KindOpenAI] = WithLogging(KindOpenAI, p, events, log)
	}
	if cfg.Configured(KindGemini) {
		p, err := NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		providers[KindGemini] = WithLogging(KindGemini, p, events, log)
	}

	r := NewRouter(providers, log)
	r.defaultKind = cfg.DefaultProvider
	r.temperature = cfg.Temperature
	return r, nil
}

// DefaultKind returns the backend used when callers pass an empty Kind.
func (r *Router) DefaultKind() Kind {
	return r.defaultKind
}

// Call sends prompt with the system instructions to preferred, falling back
// to the other backend once. A configuration error on the preferred backend
// is returned immediately. When both attempts fail the error is
// *ErrAllProvidersFailed.
func (r *Router) Call(ctx context.Context, prompt, system string, preferred Kind) (string, error) {
	if preferred == "" {
		preferred = r.defaultKind
	}
	if !preferred.Valid() {
		return "", fmt.Errorf("unknown LLM provider: %q", preferred)
	}

	var errs []error
	for _, k := range []Kind{preferred, preferred.Other()} {
		text, err := r.attempt(ctx, k, prompt, system)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}

		var cfgErr *ErrConfig
		if errors.As(err, &cfgErr) && k == preferred {
			return "", err
		}

		r.log.Warn("llm provider failed", "provider", k, "purpose", PurposeFrom(ctx), "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", k, err))
	}

	return "", &ErrAllProvidersFailed{Errs: errs}
}

func (r *Router) attempt(ctx context.Context, k Kind, prompt, system string) (string, error) {
	p := r.providers[k]
	resp, err := p.Generate(ctx, Request{
		System:      system,
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		Temperature: r.temperature,
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", &ErrEmptyResponse{Model: p.ModelID()}
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", &ErrEmptyResponse{Model: p.ModelID()}
	}
	return text, nil
}
