package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is the key-value surface every stateful component runs on:
// sessions, the analysis cache, idempotency markers, chat state and
// metric counters. Backends must offer read-your-writes per key; no
// cross-key transactions are assumed.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	// Put writes the value. A zero ttl means no expiry.
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	ListPrefix(ctx context.Context, prefix string) (map[string]string, error)
	Delete(ctx context.Context, key string) error
}
