package cache

import (
	"context"
	"time"
)

// Cache defines the caching and keyed-collection operations interface.
// This is a port that can be implemented by different providers (Redis, in-memory, etc.).
// Hash operations back the keyed collections used by the repositories
// (shipments and emission factors are stored as id -> JSON document hashes).
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached value or an error if not found or on failure.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	Delete(ctx context.Context, key string) error

	// HSet stores a field -> value pair inside the hash at key.
	HSet(ctx context.Context, key, field string, value []byte) error

	// HGet retrieves a single field from the hash at key.
	// Returns an error if the field is not present.
	HGet(ctx context.Context, key, field string) ([]byte, error)

	// HGetAll retrieves every field -> value pair of the hash at key.
	// An empty map means the hash does not exist.
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)

	// HDel removes the given fields from the hash at key and
	// returns how many fields were actually removed.
	HDel(ctx context.Context, key string, fields ...string) (int64, error)

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
