package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type sqliteSessionRepo struct {
	db *sql.DB
}

func (r *sqliteSessionRepo) Save(ctx context.Context, rec SessionRecord) error {
	if rec.ID == "" {
		return errors.New("save session: empty id")
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, provider, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			provider = excluded.provider,
			data = excluded.data,
			updated_at = excluded.updated_at;`,
		rec.ID, rec.Provider, string(rec.Data), rec.CreatedAt.UnixNano(), rec.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", rec.ID, err)
	}
	return nil
}

func (r *sqliteSessionRepo) Load(ctx context.Context, id string) (*SessionRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, provider, data, created_at, updated_at
		FROM sessions WHERE id = ?;`, id)

	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return rec, nil
}

func (r *sqliteSessionRepo) List(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	query := `SELECT id, provider, data, created_at, updated_at
		FROM sessions ORDER BY updated_at DESC, id ASC`
	var args []any
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *sqliteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(s rowScanner) (*SessionRecord, error) {
	var (
		rec              SessionRecord
		data             string
		created, updated int64
	)
	if err := s.Scan(&rec.ID, &rec.Provider, &data, &created, &updated); err != nil {
		return nil, err
	}
	rec.Data = []byte(data)
	rec.CreatedAt = time.Unix(0, created).UTC()
	rec.UpdatedAt = time.Unix(0, updated).UTC()
	return &rec, nil
}
