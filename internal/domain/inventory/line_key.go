package inventory

import (
	"fmt"

	"github.com/google/uuid"
)

// LineKey identifies a stock line: a product together with an optional batch.
// A line with no batch is a distinct key from any batched line of the same
// product. The zero BatchID (uuid.Nil) encodes "no batch", so LineKey is
// comparable and usable as a map key.
type LineKey struct {
	ProductID uuid.UUID
	BatchID   uuid.UUID
}

// NewLineKey builds a LineKey from a product and an optional batch
func NewLineKey(productID uuid.UUID, batchID *uuid.UUID) LineKey {
	key := LineKey{ProductID: productID}
	if batchID != nil {
		key.BatchID = *batchID
	}
	return key
}

// HasBatch returns true if the key refers to a specific batch
func (k LineKey) HasBatch() bool {
	return k.BatchID != uuid.Nil
}

// Batch returns the batch ID as a pointer, nil when the key has no batch
func (k LineKey) Batch() *uuid.UUID {
	if !k.HasBatch() {
		return nil
	}
	b := k.BatchID
	return &b
}

// String returns a human-readable representation for logs
func (k LineKey) String() string {
	if k.HasBatch() {
		return fmt.Sprintf("%s/%s", k.ProductID, k.BatchID)
	}
	return k.ProductID.String()
}
