package returns

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/shared"
)

// ReturnItem is a single returned product line. Subtotal is fixed at
// creation from quantity and unit price and never recomputed afterwards.
type ReturnItem struct {
	shared.BaseEntity
	ReturnID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	BatchID   *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ReturnItem) TableName() string {
	return "return_items"
}

// NewReturnItem creates a validated return item
func NewReturnItem(productID uuid.UUID, batchID *uuid.UUID, quantity, unitPrice decimal.Decimal) (*ReturnItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PRODUCT", "Product ID is required")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewValidationError("INVALID_QUANTITY", "Return quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewValidationError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}

	return &ReturnItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		BatchID:    batchID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Subtotal:   quantity.Mul(unitPrice),
	}, nil
}

// LineKey returns the stock line this item touches
func (i *ReturnItem) LineKey() inventory.LineKey {
	return inventory.NewLineKey(i.ProductID, i.BatchID)
}
