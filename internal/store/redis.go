package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces session keys.
const redisKeyPrefix = "insightmentor:session:"

// RedisSessionRepo stores sessions in Redis with an expiry, for deployments
// that run several API replicas against shared session state.
type RedisSessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// redisSession is the JSON envelope stored under each key.
type redisSession struct {
	ID        string          `json:"id"`
	Provider  string          `json:"provider"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OpenRedis connects to the Redis instance at url (redis://...) and pings
// it. ttl of zero keeps sessions forever.
func OpenRedis(ctx context.Context, url string, ttl time.Duration) (*RedisSessionRepo, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisSessionRepo(client, ttl), nil
}

// NewRedisSessionRepo wraps an existing client.
func NewRedisSessionRepo(client *redis.Client, ttl time.Duration) *RedisSessionRepo {
	return &RedisSessionRepo{client: client, ttl: ttl}
}

// Close closes the underlying client.
func (r *RedisSessionRepo) Close() error {
	return r.client.Close()
}

func (r *RedisSessionRepo) Save(ctx context.Context, rec SessionRecord) error {
	if rec.ID == "" {
		return errors.New("save session: empty id")
	}
	b, err := encodeRedisSession(rec, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("encode session %s: %w", rec.ID, err)
	}
	if err := r.client.Set(ctx, redisKey(rec.ID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", rec.ID, err)
	}
	return nil
}

func (r *RedisSessionRepo) Load(ctx context.Context, id string) (*SessionRecord, error) {
	b, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return decodeRedisSession(b)
}

func (r *RedisSessionRepo) List(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	var out []SessionRecord
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		b, err := r.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue // expired between SCAN and GET
		}
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		rec, err := decodeRedisSession(b)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan sessions: %w", err)
	}

	sortSessions(out)
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *RedisSessionRepo) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, redisKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func encodeRedisSession(rec SessionRecord, now time.Time) ([]byte, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}
	data := json.RawMessage(rec.Data)
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return json.Marshal(redisSession{
		ID:        rec.ID,
		Provider:  rec.Provider,
		Data:      data,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

func decodeRedisSession(b []byte) (*SessionRecord, error) {
	var s redisSession
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &SessionRecord{
		ID:        s.ID,
		Provider:  s.Provider,
		Data:      []byte(s.Data),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

// sortSessions orders records most recently updated first, ties by ID.
func sortSessions(recs []SessionRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		if !recs[i].UpdatedAt.Equal(recs[j].UpdatedAt) {
			return recs[i].UpdatedAt.After(recs[j].UpdatedAt)
		}
		return recs[i].ID < recs[j].ID
	})
}
