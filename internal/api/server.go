// Package api exposes the study session flow and the stateless tutor
// functions over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/insightmentor/insightmentor/internal/logger"
	"github.com/insightmentor/insightmentor/internal/session"
)

// SessionStore persists session states.
// *session.Repository satisfies it.
type SessionStore interface {
	Save(ctx context.Context, st session.State) error
	Load(ctx context.Context, id string) (session.State, error)
	List(ctx context.Context, limit int) ([]session.Summary, error)
	Delete(ctx context.Context, id string) error
}

// Config wires the server's dependencies.
type Config struct {
	Service     *session.Service
	Sessions    SessionStore
	Log         *logger.Logger
	CORSOrigins []string
}

// Server serves the HTTP API.
type Server struct {
	engine *gin.Engine
	log    *logger.Logger
}

// NewServer builds the router. It fails only if a request schema does not
// compile.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	engine, err := NewRouter(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{engine: engine, log: cfg.Log}, nil
}

// Handler returns the http.Handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
