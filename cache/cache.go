// Package cache provides a thin key-value client over Redis. The cache is a
// side-effect-only optimization: callers must treat a miss as "recompute",
// never as an authoritative answer.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss indicates the key is absent. It is distinct from transport
// failures so callers can tell a miss apart from an unavailable cache.
var ErrCacheMiss = errors.New("cache: key not found")

// Client is the key-value surface used across the library. Implementations
// must be safe for concurrent use.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Incr(ctx context.Context, key string, amount int64) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Ping(ctx context.Context) error
}
