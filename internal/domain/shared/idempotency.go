package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers responses by client-supplied idempotency key so
// a retried request replays the original outcome instead of writing twice.
type IdempotencyStore interface {
	// Get returns the stored response for the key, and whether one exists
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the response for the key with a TTL; after the TTL the key
	// can be reused
	Set(ctx context.Context, key string, response []byte, ttl time.Duration) error

	// Close releases any resources held by the store
	Close() error
}
