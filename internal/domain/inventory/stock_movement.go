package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// MovementKind categorizes a stock movement. The kind carries the direction;
// the recorded quantity is always positive.
type MovementKind string

const (
	// MovementReturnIn is stock coming back from a customer return
	MovementReturnIn MovementKind = "return_in"
	// MovementReturnOut is stock going back to a supplier
	MovementReturnOut MovementKind = "return_out"
)

// IsValid checks if the movement kind is valid
func (k MovementKind) IsValid() bool {
	return k == MovementReturnIn || k == MovementReturnOut
}

// IsInbound returns true if the kind increases stock
func (k MovementKind) IsInbound() bool {
	return k == MovementReturnIn
}

// StockMovement is one row of the append-only stock audit trail. Movements
// are never updated or deleted.
type StockMovement struct {
	shared.BaseEntity
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BatchID       *uuid.UUID      `gorm:"type:uuid;index"`
	Kind          MovementKind    `gorm:"type:varchar(20);not null;index"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReferenceType string          `gorm:"type:varchar(50);not null"`
	ReferenceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	OccurredAt    time.Time       `gorm:"not null;index"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a movement record. Quantity must be positive;
// direction comes from the kind.
func NewStockMovement(key LineKey, kind MovementKind, quantity decimal.Decimal, referenceType string, referenceID uuid.UUID) (*StockMovement, error) {
	if key.ProductID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PRODUCT", "Product ID is required")
	}
	if !kind.IsValid() {
		return nil, shared.NewValidationError("INVALID_MOVEMENT_KIND", "Unknown stock movement kind")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewValidationError("INVALID_QUANTITY", "Movement quantity must be positive")
	}
	if referenceType == "" || referenceID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_REFERENCE", "Movement reference is required")
	}

	return &StockMovement{
		BaseEntity:    shared.NewBaseEntity(),
		ProductID:     key.ProductID,
		BatchID:       key.Batch(),
		Kind:          kind,
		Quantity:      quantity,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		OccurredAt:    time.Now(),
	}, nil
}

// SignedQuantity returns the quantity with the direction applied
func (m *StockMovement) SignedQuantity() decimal.Decimal {
	if m.Kind.IsInbound() {
		return m.Quantity
	}
	return m.Quantity.Neg()
}
