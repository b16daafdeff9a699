// Package redisstore implements the local fallback and sync metadata on
// Redis, for deployments where several processes share one workspace.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

var (
	_ storage.FallbackStorage = (*Store)(nil)
	_ storage.MetadataStorage = (*Store)(nil)
)

// Store implements FallbackStorage and MetadataStorage using Redis
type Store struct {
	client *redis.Client
	prefix string
}

// New creates a new Redis-backed store and checks the connection
func New(ctx context.Context, redisURL, prefix string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Проверяем соединение
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client, prefix), nil
}

// NewWithClient creates a store from an existing Redis client
func NewWithClient(client *redis.Client, prefix string) *Store {
	return &Store{
		client: client,
		prefix: prefix,
	}
}

// key prepends the configured namespace
func (s *Store) key(k string) string {
	return s.prefix + k
}

// SaveWorkspace writes the workspace blob and its save time in one
// MULTI/EXEC block
func (s *Store) SaveWorkspace(ctx context.Context, workspaceID string, data []byte, ts time.Time) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(storage.WorkspaceKey(workspaceID)), data, 0)
		pipe.Set(ctx, s.key(storage.WorkspaceTimestampKey(workspaceID)), storage.FormatTimestamp(ts), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save workspace: %w", err)
	}
	return nil
}

// LoadWorkspace reads the workspace back, nil if it was never saved
func (s *Store) LoadWorkspace(ctx context.Context, workspaceID string) (*storage.WorkspaceSnapshot, error) {
	vals, err := s.client.MGet(ctx,
		s.key(storage.WorkspaceKey(workspaceID)),
		s.key(storage.WorkspaceTimestampKey(workspaceID)),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}

	data, ok1 := vals[0].(string)
	stamp, ok2 := vals[1].(string)
	if !ok1 || !ok2 {
		return nil, nil
	}

	ts, err := storage.ParseTimestamp(stamp)
	if err != nil {
		return nil, fmt.Errorf("parse workspace timestamp: %w", err)
	}

	return &storage.WorkspaceSnapshot{Data: []byte(data), Timestamp: ts}, nil
}

// SaveLastSyncTime saves the time of the last completed push or pull
func (s *Store) SaveLastSyncTime(ctx context.Context, phase string, t time.Time) error {
	if err := s.client.Set(ctx, s.key("last_"+phase+"_time"), t.UTC().Format(time.RFC3339Nano), 0).Err(); err != nil {
		return fmt.Errorf("save last %s time: %w", phase, err)
	}
	return nil
}

// GetLastSyncTime retrieves the time of the last completed push or pull
func (s *Store) GetLastSyncTime(ctx context.Context, phase string) (time.Time, error) {
	val, err := s.client.Get(ctx, s.key("last_"+phase+"_time")).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get last %s time: %w", phase, err)
	}

	t, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last %s time: %w", phase, err)
	}
	return t, nil
}

// Ping checks if Redis is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
