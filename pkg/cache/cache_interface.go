package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// The cache is advisory: callers must be able to recompute any entry from the
// primary store, so implementations may be swapped (Redis, in-memory) without
// affecting correctness.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns (found, error):
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Increment atomically increments a counter key and returns the new value.
	// Missing keys start at zero.
	Increment(ctx context.Context, key string) (int64, error)

	// SetAdd adds members to a set key.
	SetAdd(ctx context.Context, key string, members ...string) error

	// SetMembers returns all members of a set key (empty slice when absent).
	SetMembers(ctx context.Context, key string) ([]string, error)

	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
