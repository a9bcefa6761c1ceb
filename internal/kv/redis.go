package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisStore implements Store on top of Redis. Snapshots are stored without
// expiry; the state is authoritative, not a cache.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore creates a Redis-backed store and verifies the connection.
func NewRedisStore(cfg RedisConfig, logger zerolog.Logger) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &redisStore{
		client: client,
		logger: logger.With().Str("component", "redis-store").Logger(),
	}, nil
}

// Get retrieves the value for a key, or ErrNotFound.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read state key")
		return nil, fmt.Errorf("failed to read state for %s: %w", key, err)
	}
	return data, nil
}

// Set stores the value for a key, replacing any previous value.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write state key")
		return fmt.Errorf("failed to write state for %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete state for %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *redisStore) Close() error {
	return s.client.Close()
}
