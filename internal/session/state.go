package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/insightmentor/insightmentor/internal/analyzer"
	"github.com/insightmentor/insightmentor/internal/llm"
	"github.com/insightmentor/insightmentor/internal/tutor"
)

// State is everything one learner has produced in a study session. It is a
// value: Service methods take a State and return an updated copy, leaving
// the input untouched.
type State struct {
	ID       string   `json:"id"`
	Provider llm.Kind `json:"provider"`

	RawText    string               `json:"raw_text"`
	Summary    string               `json:"summary"`
	Concepts   []string             `json:"concepts"`
	Flashcards []analyzer.Flashcard `json:"flashcards"`

	// Mastery maps concept to a score in [0, 1].
	Mastery map[string]float64 `json:"mastery"`

	StudyPlan []tutor.StudyTask    `json:"study_plan"`
	Quiz      []tutor.QuizQuestion `json:"quiz"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New starts an empty session bound to provider. An empty provider selects
// llm.DefaultKind.
func New(provider llm.Kind) State {
	if provider == "" {
		provider = llm.DefaultKind
	}
	now := time.Now().UTC()
	return State{
		ID:        uuid.New().String(),
		Provider:  provider,
		Mastery:   map[string]float64{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasNotes reports whether study material has been analyzed.
func (s State) HasNotes() bool {
	return s.RawText != ""
}

// Summary is the listing view of a session.
type Summary struct {
	ID        string    `json:"id"`
	Provider  llm.Kind  `json:"provider"`
	Concepts  int       `json:"concepts"`
	Cards     int       `json:"flashcards"`
	HasPlan   bool      `json:"has_plan"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summarize returns the listing view of s.
func (s State) Summarize() Summary {
	return Summary{
		ID:        s.ID,
		Provider:  s.Provider,
		Concepts:  len(s.Concepts),
		Cards:     len(s.Flashcards),
		HasPlan:   len(s.StudyPlan) > 0,
		UpdatedAt: s.UpdatedAt,
	}
}
