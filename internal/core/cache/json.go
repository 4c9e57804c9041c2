package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop-admin/internal/core/logger"

	"go.uber.org/zap"
)

// GetJSON reads key and decodes it into a T. The boolean is false on a miss.
func GetJSON[T any](ctx context.Context, c Cache, key string) (T, bool, error) {
	var zero T

	data, err := c.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrMiss) {
			return zero, false, nil
		}
		return zero, false, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return value, true, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON[T any](ctx context.Context, c Cache, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}

// Remember returns the cached value under key, or calls load and caches its
// result for ttl. Cache failures are logged and fall through to load.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	cached, ok, err := GetJSON[T](ctx, c, key)
	if err != nil {
		logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := SetJSON(ctx, c, key, value, ttl); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

// Noop is a Cache that stores nothing. It is used when Redis is not configured.
type Noop struct{}

// NewNoop returns a cache that always misses.
func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) Get(_ context.Context, key string) ([]byte, error) {
	return nil, fmt.Errorf("key %s: %w", key, ErrMiss)
}

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Delete(context.Context, string) error { return nil }

func (Noop) Ping(context.Context) error { return nil }

func (Noop) Close() error { return nil }
