package cache

import (
	"context"
	"time"
)

// Cache fronts the read-heavy payloads (predefined questions, admin stats).
// A miss is not an error: callers fall through to the database.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
