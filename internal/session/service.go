package session

import (
	"context"
	"strings"
	"time"

	"github.com/insightmentor/insightmentor/internal/analyzer"
	"github.com/insightmentor/insightmentor/internal/logger"
	"github.com/insightmentor/insightmentor/internal/tutor"
)

// Config controls the sizes of generated artifacts.
type Config struct {
	Analyzer     analyzer.Config
	MaxTasks     int
	NumQuestions int
	MasteryDelta float64
}

// DefaultConfig returns the limits used by the study flow.
func DefaultConfig() Config {
	return Config{
		Analyzer:     analyzer.DefaultConfig(),
		MaxTasks:     tutor.DefaultMaxTasks,
		NumQuestions: tutor.DefaultNumQuestions,
		MasteryDelta: tutor.DefaultDelta,
	}
}

// Service runs the study flow over session State values.
type Service struct {
	analyzer *analyzer.Analyzer
	cfg      Config
	log      *logger.Logger
	now      func() time.Time
}

// NewService creates a Service. log may be nil.
func NewService(a *analyzer.Analyzer, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		analyzer: a,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Analyze summarizes text, extracts its concepts and builds flashcards using
// the session's provider. On success the returned State holds the new
// material with mastery seeded for every concept; a previous plan and quiz
// are discarded. On failure st is returned unchanged with the error.
func (s *Service) Analyze(ctx context.Context, st State, text string) (State, error) {
	if strings.TrimSpace(text) == "" {
		return st, ErrEmptyText
	}

	summary, err := s.analyzer.Summarize(ctx, text, st.Provider)
	if err != nil {
		return st, err
	}
	concepts, err := s.analyzer.ExtractConcepts(ctx, text, s.cfg.Analyzer.MaxConcepts, st.Provider)
	if err != nil {
		return st, err
	}
	cards, err := s.analyzer.GenerateFlashcards(ctx, text, concepts, s.cfg.Analyzer.MaxCards, st.Provider)
	if err != nil {
		return st, err
	}

	next := st
	next.RawText = text
	next.Summary = summary
	next.Concepts = concepts
	next.Flashcards = cards
	next.Mastery = tutor.SeedMastery(st.Mastery, concepts)
	next.StudyPlan = nil
	next.Quiz = nil
	next.UpdatedAt = s.now()

	s.log.Info("session analyzed", "session", st.ID, "provider", st.Provider,
		"concepts", len(concepts), "flashcards", len(cards))
	return next, nil
}

// PlanAndQuiz builds a study plan from current mastery and a quiz over the
// session's concepts, then counts the session as studied: every concept's
// mastery rises by the configured delta.
func (s *Service) PlanAndQuiz(st State) (State, error) {
	if len(st.Concepts) == 0 {
		return st, ErrNoConcepts
	}

	next := st
	next.StudyPlan = tutor.GeneratePlan(st.Concepts, st.Mastery, s.cfg.MaxTasks)
	next.Quiz = tutor.GenerateQuiz(st.Concepts, st.RawText, s.cfg.NumQuestions)
	next.Mastery = tutor.UpdateMastery(st.Mastery, st.Concepts, s.cfg.MasteryDelta)
	next.UpdatedAt = s.now()

	s.log.Info("study plan generated", "session", st.ID,
		"tasks", len(next.StudyPlan), "questions", len(next.Quiz))
	return next, nil
}

// Ask answers a free-form prompt about the session's notes.
func (s *Service) Ask(ctx context.Context, st State, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if !st.HasNotes() {
		return "", ErrNoNotes
	}
	return s.analyzer.Ask(ctx, prompt, st.RawText, st.Provider)
}
