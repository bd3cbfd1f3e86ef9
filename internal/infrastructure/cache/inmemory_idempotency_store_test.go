package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a stored response", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		require.NoError(t, store.Set(ctx, "key-1", []byte(`{"ok":true}`), time.Minute))

		data, found, err := store.Get(ctx, "key-1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`{"ok":true}`), data)
	})

	t.Run("misses unknown keys", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, found, err := store.Get(ctx, "never-set")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("expires entries after the TTL", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		require.NoError(t, store.Set(ctx, "key-2", []byte("payload"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, found, err := store.Get(ctx, "key-2")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("overwrites an existing key", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		require.NoError(t, store.Set(ctx, "key-3", []byte("first"), time.Minute))
		require.NoError(t, store.Set(ctx, "key-3", []byte("second"), time.Minute))

		data, found, err := store.Get(ctx, "key-3")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("second"), data)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())
	})

	t.Run("cleanup drops expired entries", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		require.NoError(t, store.Set(ctx, "stale", []byte("x"), -time.Second))
		require.NoError(t, store.Set(ctx, "fresh", []byte("y"), time.Minute))

		store.cleanup()

		store.mu.RLock()
		_, staleExists := store.entries["stale"]
		_, freshExists := store.entries["fresh"]
		store.mu.RUnlock()

		assert.False(t, staleExists)
		assert.True(t, freshExists)
	})
}
