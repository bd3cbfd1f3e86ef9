package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMovementRepository implements inventory.MovementRepository using GORM.
// Movements are insert-only; there is no update or delete path.
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Append inserts a movement row
func (r *GormMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	return dbFrom(ctx, r.db).Create(movement).Error
}

// FindByProduct finds movements for a product, newest first
func (r *GormMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	query := dbFrom(ctx, r.db).
		Model(&inventory.StockMovement{}).
		Where("product_id = ?", productID)
	query = applyPaging(query, filter, "occurred_at", "created_at")

	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByReference finds the movements recorded for a document
func (r *GormMovementRepository) FindByReference(ctx context.Context, referenceType string, referenceID uuid.UUID) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	if err := dbFrom(ctx, r.db).
		Where("reference_type = ? AND reference_id = ?", referenceType, referenceID).
		Order("occurred_at").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

var _ inventory.MovementRepository = (*GormMovementRepository)(nil)
