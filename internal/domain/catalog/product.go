package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// Product represents a sellable product in the catalog.
// CurrentStock is the aggregate on-hand quantity across all batches; it is
// mutated only through the inventory stock ledger, never assigned directly.
type Product struct {
	shared.BaseAggregateRoot
	Code         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Unit         string          `gorm:"type:varchar(20);not null;default:'pcs'"`
	CurrentStock decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	Batches []ProductBatch `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name, unit string) (*Product, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewValidationError("INVALID_CODE", "Product code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("INVALID_NAME", "Product name cannot be empty")
	}
	if unit == "" {
		unit = "pcs"
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Unit:              unit,
		CurrentStock:      decimal.Zero,
	}, nil
}

// HasStock returns true if the product has positive on-hand stock
func (p *Product) HasStock() bool {
	return p.CurrentStock.GreaterThan(decimal.Zero)
}

// GetBatch returns the batch with the given ID, or nil if not present
func (p *Product) GetBatch(batchID uuid.UUID) *ProductBatch {
	for idx := range p.Batches {
		if p.Batches[idx].ID == batchID {
			return &p.Batches[idx]
		}
	}
	return nil
}

// AddBatch registers a new batch for the product.
// Batch numbers must be unique per product.
func (p *Product) AddBatch(batchNumber string, expiryDate *time.Time, quantity decimal.Decimal) (*ProductBatch, error) {
	for _, b := range p.Batches {
		if b.BatchNumber == batchNumber {
			return nil, shared.NewValidationError("DUPLICATE_BATCH", "Batch number already exists for this product")
		}
	}

	batch, err := NewProductBatch(p.ID, batchNumber, expiryDate, quantity)
	if err != nil {
		return nil, err
	}

	p.Batches = append(p.Batches, *batch)
	p.UpdatedAt = time.Now()

	return batch, nil
}
