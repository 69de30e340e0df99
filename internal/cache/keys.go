package cache

import (
	"context"
	"time"
)

// Entry binds a cache key to its TTL so a call site cannot pair a payload
// with the wrong expiry.
type Entry struct {
	Key string
	TTL time.Duration
}

// The read-heavy payloads the chat widget and dashboard poll.
var (
	Questions  = Entry{Key: "leadbot:questions", TTL: 5 * time.Minute}
	AdminStats = Entry{Key: "leadbot:admin:stats", TTL: 30 * time.Second}
)

func (e Entry) Get(ctx context.Context, c Cache, dst any) (bool, error) {
	return c.GetJSON(ctx, e.Key, dst)
}

func (e Entry) Set(ctx context.Context, c Cache, val any) error {
	return c.SetJSON(ctx, e.Key, val, e.TTL)
}
