package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when key isn't cached or its entry expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores JSON encoded values with TTL.
type Cache interface {
	// Get decodes value stored under key into dest. It returns ErrCacheMiss if there is no such value.
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Open returns Redis cache when redisURL is set and in-memory cache otherwise.
// Returned function releases cache resources.
func Open(ctx context.Context, redisURL, prefix string, cleanupInterval time.Duration) (Cache, func() error, error) {
	if redisURL == "" {
		memory := NewMemory(cleanupInterval)
		return memory, func() error {
			memory.Close()
			return nil
		}, nil
	}

	client, err := Connect(ctx, redisURL)
	if err != nil {
		return nil, nil, err
	}

	return NewRedis(client, prefix), client.Close, nil
}
