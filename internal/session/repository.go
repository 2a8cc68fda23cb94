package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/insightmentor/insightmentor/internal/store"
)

// Repository persists session States through a store.SessionRepo.
type Repository struct {
	repo store.SessionRepo
}

// NewRepository wraps repo.
func NewRepository(repo store.SessionRepo) *Repository {
	return &Repository{repo: repo}
}

// Save stores st, replacing any earlier version.
func (r *Repository) Save(ctx context.Context, st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", st.ID, err)
	}
	return r.repo.Save(ctx, store.SessionRecord{
		ID:        st.ID,
		Provider:  string(st.Provider),
		Data:      data,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	})
}

// Load returns the session with id, or an error wrapping store.ErrNotFound.
func (r *Repository) Load(ctx context.Context, id string) (State, error) {
	rec, err := r.repo.Load(ctx, id)
	if err != nil {
		return State{}, err
	}
	return decodeState(rec)
}

// List returns summaries of stored sessions, most recently updated first.
func (r *Repository) List(ctx context.Context, limit int) ([]Summary, error) {
	recs, err := r.repo.List(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(recs))
	for i := range recs {
		st, err := decodeState(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, st.Summarize())
	}
	return out, nil
}

// Delete removes the session with id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.repo.Delete(ctx, id)
}

func decodeState(rec *store.SessionRecord) (State, error) {
	var st State
	if err := json.Unmarshal(rec.Data, &st); err != nil {
		return State{}, fmt.Errorf("decoding session %s: %w", rec.ID, err)
	}
	if st.Mastery == nil {
		st.Mastery = map[string]float64{}
	}
	return st, nil
}
