package repository

import (
	"context"
	"time"
)

// CacheRepository stores encoded API responses between dashboard requests.
// Get returns types.ErrCacheMiss when the key is absent or expired.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
