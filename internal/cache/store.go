// Package cache implements the response-memoization layer: a key-value store
// abstraction over Redis, deterministic cache-key derivation, and a generic
// wrapper that caches handler results for a fixed TTL.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyValueStore is the backend contract for cached response payloads.
//
// Get reports absence via the boolean, not an error; any returned error is a
// backend failure and callers propagate it unchanged. Set writes the value and
// its expiration in a single operation. Keys lists keys matching a glob
// pattern and exists for the debug endpoints.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// RedisStore implements KeyValueStore on a Redis client.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	if rdb == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{rdb: rdb}
}

// Get retrieves the value for key. A missing key is (nil, false, nil).
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return b, true, nil
}

// Set stores value under key with the given TTL in one SET call, so a key can
// never be left behind without an expiration.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Keys returns all keys matching the glob pattern.
func (s *RedisStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := s.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("redis keys: %w", err)
	}
	return keys, nil
}

// Check pings Redis with a short timeout. Implements the health checker
// contract used by the readiness endpoint.
func (s *RedisStore) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
