package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insightmentor/insightmentor/internal/analyzer"
	"github.com/insightmentor/insightmentor/internal/config"
	"github.com/insightmentor/insightmentor/internal/llm"
	"github.com/insightmentor/insightmentor/internal/logger"
	"github.com/insightmentor/insightmentor/internal/session"
	"github.com/insightmentor/insightmentor/internal/store"
)

// deps holds everything a command needs. Close releases it.
type deps struct {
	cfg      config.Config
	log      *logger.Logger
	store    *store.Store
	sessions *session.Repository
	service  *session.Service
	closers  []func() error
}

// buildDeps opens the store and session backend and wires the study
// service. Missing LLM credentials do not fail here; calls that need a
// provider report the missing variable instead.
func buildDeps(cmd *cobra.Command, log *logger.Logger) (*deps, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = cliLogger(cmd, cfg)
	}
	d := &deps{cfg: cfg, log: log}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	d.store, err = store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	d.closers = append(d.closers, d.store.Close)

	sessionRepo := d.store.SessionRepo()
	if cfg.SessionBackend == config.BackendRedis {
		r, err := store.OpenRedis(ctx, cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("open redis session store: %w", err)
		}
		d.closers = append(d.closers, r.Close)
		sessionRepo = r
	}
	d.sessions = session.NewRepository(sessionRepo)

	router, err := newLLMRouter(ctx, cfg.LLM, d.store.EventRepo(), log)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.service = session.NewService(analyzer.New(router), session.DefaultConfig(), log)

	log.Debug("dependencies ready", "db", dbPath, "session_backend", cfg.SessionBackend,
		"provider", cfg.LLM.DefaultProvider)
	return d, nil
}

// newLLMRouter builds the provider router. Without any credentials every
// call fails with *llm.ErrConfig naming the variable to set.
func newLLMRouter(ctx context.Context, cfg llm.Config, events store.EventRepo, log *logger.Logger) (*llm.Router, error) {
	if !cfg.DefaultProvider.Valid() {
		return nil, fmt.Errorf("unknown LLM provider: %q (want openai or gemini)", cfg.DefaultProvider)
	}
	if !cfg.Configured(llm.KindOpenAI) && !cfg.Configured(llm.KindGemini) {
		log.Warn("no LLM credentials configured; AI features unavailable",
			"openai_env", llm.EnvOpenAIKey, "gemini_env", llm.EnvGeminiKey)
		return llm.NewRouter(nil, log), nil
	}
	return llm.NewRouterFromConfig(ctx, cfg, events, log)
}

func cliLogger(cmd *cobra.Command, cfg config.Config) *logger.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		return logger.Nop()
	}
	l, err := logger.New(cfg.LogMode)
	if err != nil {
		return logger.Nop()
	}
	return l
}

func (d *deps) Close() {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		d.log.Warn("closing resources", "error", err)
	}
	d.log.Sync()
}
