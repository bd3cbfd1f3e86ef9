package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// ProductBatch tracks per-batch on-hand stock for a product.
// Quantity is mutated only through the inventory stock ledger so that it
// stays consistent with the owning product's CurrentStock.
type ProductBatch struct {
	shared.BaseEntity
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_batch_number"`
	BatchNumber string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_batch_number"`
	ExpiryDate  *time.Time      `gorm:"type:date"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductBatch) TableName() string {
	return "product_batches"
}

// NewProductBatch creates a new product batch
func NewProductBatch(productID uuid.UUID, batchNumber string, expiryDate *time.Time, quantity decimal.Decimal) (*ProductBatch, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PRODUCT", "Product ID is required")
	}
	batchNumber = strings.TrimSpace(batchNumber)
	if batchNumber == "" {
		return nil, shared.NewValidationError("INVALID_BATCH_NUMBER", "Batch number cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewValidationError("INVALID_QUANTITY", "Batch quantity cannot be negative")
	}

	return &ProductBatch{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   productID,
		BatchNumber: batchNumber,
		ExpiryDate:  expiryDate,
		Quantity:    quantity,
	}, nil
}

// IsExpired returns true if the batch has an expiry date in the past
func (b *ProductBatch) IsExpired() bool {
	return b.ExpiryDate != nil && b.ExpiryDate.Before(time.Now())
}
