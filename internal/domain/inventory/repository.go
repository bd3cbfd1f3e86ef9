package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// StockRepository applies stock deltas as atomic database increments.
// Implementations must use a single UPDATE with an arithmetic expression,
// never read-modify-write, so concurrent writers cannot lose updates.
//
// When enforceFloor is true the increment only applies if the resulting
// quantity stays non-negative; otherwise ErrInsufficientStock is returned.
type StockRepository interface {
	ApplyProductDelta(ctx context.Context, productID uuid.UUID, delta decimal.Decimal, enforceFloor bool) error
	ApplyBatchDelta(ctx context.Context, batchID uuid.UUID, delta decimal.Decimal, enforceFloor bool) error
}

// MovementRepository persists the append-only movement log
type MovementRepository interface {
	Append(ctx context.Context, movement *StockMovement) error
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]StockMovement, error)
	FindByReference(ctx context.Context, referenceType string, referenceID uuid.UUID) ([]StockMovement, error)
}
