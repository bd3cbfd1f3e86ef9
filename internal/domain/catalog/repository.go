package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products and their batches
type ProductRepository interface {
	shared.Repository[Product]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindBatchByID(ctx context.Context, batchID uuid.UUID) (*ProductBatch, error)
	SaveBatch(ctx context.Context, batch *ProductBatch) error
}
