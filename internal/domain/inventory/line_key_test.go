package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineKey(t *testing.T) {
	productID := uuid.New()
	batchID := uuid.New()

	t.Run("without batch", func(t *testing.T) {
		key := NewLineKey(productID, nil)
		assert.False(t, key.HasBatch())
		assert.Nil(t, key.Batch())
	})

	t.Run("with batch", func(t *testing.T) {
		key := NewLineKey(productID, &batchID)
		assert.True(t, key.HasBatch())
		require.NotNil(t, key.Batch())
		assert.Equal(t, batchID, *key.Batch())
	})

	t.Run("batch pointer is a copy", func(t *testing.T) {
		key := NewLineKey(productID, &batchID)
		p := key.Batch()
		*p = uuid.New()
		assert.Equal(t, batchID, key.BatchID)
	})
}

func TestLineKey_AsMapKey(t *testing.T) {
	productID := uuid.New()
	batchID := uuid.New()

	unbatched := NewLineKey(productID, nil)
	batched := NewLineKey(productID, &batchID)

	m := map[LineKey]int{unbatched: 1, batched: 2}
	assert.Equal(t, 1, m[NewLineKey(productID, nil)])
	assert.Equal(t, 2, m[NewLineKey(productID, &batchID)])
	assert.NotEqual(t, unbatched, batched)
}
