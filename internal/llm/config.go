package llm

import (
	"errors"
	"fmt"
	"os"
)

// Environment variables holding provider credentials.
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// Config holds all LLM provider configuration.
type Config struct {
	// DefaultProvider is used when a caller does not pick one.
	DefaultProvider Kind

	OpenAI OpenAIConfig
	Gemini GeminiConfig

	// Temperature is applied to every request. Default: 0.7.
	Temperature float64
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultProvider: DefaultKind,
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Temperature: 0.7,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. An unparseable INSIGHT_LLM_PROVIDER is
// kept verbatim so that Validate reports it.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("INSIGHT_LLM_PROVIDER"); p != "" {
		if k, err := ParseKind(p); err == nil {
			cfg.DefaultProvider = k
		} else {
			cfg.DefaultProvider = Kind(p)
		}
	}

	cfg.OpenAI.APIKey = os.Getenv(EnvOpenAIKey)
	if m := os.Getenv("OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.Gemini.APIKey = os.Getenv(EnvGeminiKey)
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// Validate checks that at least one provider has a credential and that the
// default provider is a known backend.
func (c Config) Validate() error {
	if !c.DefaultProvider.Valid() {
		return fmt.Errorf("unknown LLM provider: %q", c.DefaultProvider)
	}
	if c.OpenAI.APIKey == "" && c.Gemini.APIKey == "" {
		return errors.New("no LLM credentials: set " + EnvOpenAIKey + " and/or " + EnvGeminiKey)
	}
	return nil
}

// Configured reports whether the backend k has a credential.
func (c Config) Configured(k Kind) bool {
	switch k {
	case KindOpenAI:
		return c.OpenAI.APIKey != ""
	case KindGemini:
		return c.Gemini.APIKey != ""
	}
	return false
}

// envVarFor names the credential variable of k.
func envVarFor(k Kind) string {
	if k == KindOpenAI {
		return EnvOpenAIKey
	}
	return EnvGeminiKey
}
