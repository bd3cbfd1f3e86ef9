package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/catalog"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStockRepository implements inventory.StockRepository using GORM.
// Deltas are single UPDATE statements with arithmetic expressions so
// concurrent adjustments serialize at the row level instead of losing writes.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// ApplyProductDelta atomically adjusts a product's on-hand quantity
func (r *GormStockRepository) ApplyProductDelta(ctx context.Context, productID uuid.UUID, delta decimal.Decimal, enforceFloor bool) error {
	query := dbFrom(ctx, r.db).
		Model(&catalog.Product{}).
		Where("id = ?", productID)
	if enforceFloor {
		query = query.Where("current_stock + ? >= 0", delta)
	}
	result := query.UpdateColumns(map[string]interface{}{
		"current_stock": gorm.Expr("current_stock + ?", delta),
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyMiss(ctx, &catalog.Product{}, productID, enforceFloor)
	}
	return nil
}

// ApplyBatchDelta atomically adjusts a batch's on-hand quantity
func (r *GormStockRepository) ApplyBatchDelta(ctx context.Context, batchID uuid.UUID, delta decimal.Decimal, enforceFloor bool) error {
	query := dbFrom(ctx, r.db).
		Model(&catalog.ProductBatch{}).
		Where("id = ?", batchID)
	if enforceFloor {
		query = query.Where("quantity + ? >= 0", delta)
	}
	result := query.UpdateColumns(map[string]interface{}{
		"quantity":   gorm.Expr("quantity + ?", delta),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyMiss(ctx, &catalog.ProductBatch{}, batchID, enforceFloor)
	}
	return nil
}

// classifyMiss distinguishes "row does not exist" from "floor guard blocked
// the update" after a zero-row UPDATE
func (r *GormStockRepository) classifyMiss(ctx context.Context, model interface{}, id uuid.UUID, enforceFloor bool) error {
	if !enforceFloor {
		return shared.ErrNotFound
	}
	var count int64
	if err := dbFrom(ctx, r.db).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrNotFound
	}
	return shared.ErrInsufficientStock
}

var _ inventory.StockRepository = (*GormStockRepository)(nil)
