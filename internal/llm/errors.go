package llm

import (
	"fmt"
	"strings"
	"time"
)

// ErrConfig indicates a backend cannot be used because its credential is
// missing. It is never retried and never triggers a fallback.
type ErrConfig struct {
	Provider Kind
	EnvVar   string
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("%s provider is not configured: %s is not set", e.Provider, e.EnvVar)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider answered without usable text.
type ErrEmptyResponse struct {
	Model string
}

func (e *ErrEmptyResponse) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("empty response from %s", e.Model)
	}
	return "empty response from LLM provider"
}

// ErrAllProvidersFailed is returned when the preferred provider and its
// fallback both failed to produce text.
type ErrAllProvidersFailed struct {
	Errs []error
}

func (e *ErrAllProvidersFailed) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "both LLM providers failed: " + strings.Join(msgs, "; ")
}

func (e *ErrAllProvidersFailed) Unwrap() []error { return e.Errs }
