// Package app provides cache backend initialization.
package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/book-catalog-service/config"
	"github.com/guttosm/book-catalog-service/internal/cache"
)

// CacheComponents holds the cache backend and related components.
type CacheComponents struct {
	Store cache.KeyValueStore
	TTL   time.Duration

	// Redis is non-nil only when the Redis backend is in use; it doubles as
	// the readiness checker for the cache dependency.
	Redis *cache.RedisStore
}

// InitializeCache connects to Redis and returns the cache components.
//
// When Redis is disabled by configuration, or unreachable at startup, the
// in-memory store is used instead so the service still comes up; cached
// responses then live only as long as the process.
func InitializeCache(cfg config.CacheConfig) *CacheComponents {
	if !cfg.Enabled {
		log.Info().Msg("Redis disabled, using in-memory response cache")
		return &CacheComponents{Store: cache.NewMemoryStore(), TTL: cfg.TTL}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("addr", cfg.Addr).
			Msg("Redis unreachable, falling back to in-memory response cache")
		return &CacheComponents{Store: cache.NewMemoryStore(), TTL: cfg.TTL}
	}

	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("Connected to Redis")
	store := cache.NewRedisStore(client)
	return &CacheComponents{Store: store, TTL: cfg.TTL, Redis: store}
}
