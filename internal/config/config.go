// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/insightmentor/insightmentor/internal/llm"
)

// Session storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	LLM llm.Config

	Addr        string
	DBPath      string // empty selects store.DefaultDBPath
	LogMode     string
	CORSOrigins []string

	SessionBackend string
	RedisURL       string
	SessionTTL     time.Duration
}

// Load reads configuration from the environment. Files named in envFiles
// (default ".env") are loaded first when they exist; variables already set
// in the process environment win.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	cfg := Config{
		LLM:            llm.ConfigFromEnv(),
		Addr:           getEnv("INSIGHT_ADDR", ":8080"),
		DBPath:         os.Getenv("INSIGHT_DB"),
		LogMode:        getEnv("INSIGHT_LOG_MODE", "dev"),
		CORSOrigins:    splitList(getEnv("INSIGHT_CORS_ORIGINS", "*")),
		SessionBackend: strings.ToLower(getEnv("INSIGHT_SESSION_BACKEND", BackendSQLite)),
		RedisURL:       getEnv("INSIGHT_REDIS_URL", "redis://localhost:6379/0"),
		SessionTTL:     24 * time.Hour,
	}

	if v := os.Getenv("INSIGHT_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("INSIGHT_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	switch cfg.SessionBackend {
	case BackendSQLite, BackendRedis:
	default:
		return Config{}, fmt.Errorf("INSIGHT_SESSION_BACKEND: unknown backend %q (want %s or %s)",
			cfg.SessionBackend, BackendSQLite, BackendRedis)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
