package draftstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/infrastructure/config"
)

// NewClient creates the Redis client shared by the draft and challenge stores.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
}

// HealthCheck pings Redis.
func HealthCheck(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// RedisDraftStore implements port.DraftStore on Redis. Each wizard key maps
// to its own Redis key under the session's namespace, so writes are atomic
// per key and Clear is a single DEL of the enumerated key set.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftStore creates the store. Every key carries ttl so abandoned
// sessions age out of Redis; ttl <= 0 disables expiry.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func draftKey(sessionID string, key port.DraftKey) string {
	return fmt.Sprintf("draft:%s:%s", sessionID, key)
}

// Put stores one wizard key. Each write restarts the key's expiry clock, so a
// session stays alive as long as the wizard keeps progressing.
func (s *RedisDraftStore) Put(ctx context.Context, sessionID string, key port.DraftKey, value []byte) error {
	var ttl time.Duration
	if s.ttl > 0 {
		ttl = s.ttl
	}
	if err := s.client.Set(ctx, draftKey(sessionID, key), value, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Get loads one wizard key.
func (s *RedisDraftStore) Get(ctx context.Context, sessionID string, key port.DraftKey) ([]byte, error) {
	raw, err := s.client.Get(ctx, draftKey(sessionID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrDraftKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return raw, nil
}

// Clear removes every wizard key for the session.
func (s *RedisDraftStore) Clear(ctx context.Context, sessionID string) error {
	keys := make([]string, 0, len(port.AllDraftKeys))
	for _, key := range port.AllDraftKeys {
		keys = append(keys, draftKey(sessionID, key))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
