package returns

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// ReturnStatus represents the lifecycle state of a return document.
// Returns are recorded whole and final; there is no draft stage and no
// voiding, so completed is the only reachable state after creation.
type ReturnStatus string

const (
	ReturnStatusPending   ReturnStatus = "pending"
	ReturnStatusCompleted ReturnStatus = "completed"
)

// Return is a completed return document against a finalized invoice.
// TotalAmount is the sum of item subtotals, fixed when the document is
// completed.
type Return struct {
	shared.BaseAggregateRoot
	DocumentNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type           ReturnType      `gorm:"type:varchar(20);not null;index"`
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PartyID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status         ReturnStatus    `gorm:"type:varchar(20);not null;default:'pending'"`
	RefundType     RefundType      `gorm:"type:varchar(20);not null;default:'none'"`
	Reason         string          `gorm:"type:varchar(200)"`
	Notes          string          `gorm:"type:text"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	Items []ReturnItem `gorm:"foreignKey:ReturnID;references:ID"`
}

// TableName returns the table name for GORM
func (Return) TableName() string {
	return "returns"
}

// NewReturn creates a return document header. Items are added with AddItem
// and the document is sealed with Complete.
func NewReturn(documentNumber string, returnType ReturnType, invoiceID, partyID uuid.UUID, refundType RefundType, reason, notes string) (*Return, error) {
	if strings.TrimSpace(documentNumber) == "" {
		return nil, shared.NewValidationError("INVALID_DOCUMENT_NUMBER", "Document number cannot be empty")
	}
	if !returnType.IsValid() {
		return nil, shared.NewValidationError("INVALID_RETURN_TYPE", "Return type must be customer or supplier")
	}
	if invoiceID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_INVOICE", "Invoice ID is required")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PARTY", "Party ID is required")
	}
	if refundType == "" {
		refundType = RefundTypeNone
	}
	if !refundType.IsValid() {
		return nil, shared.NewValidationError("INVALID_REFUND_TYPE", "Unknown refund type")
	}

	return &Return{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DocumentNumber:    documentNumber,
		Type:              returnType,
		InvoiceID:         invoiceID,
		PartyID:           partyID,
		Status:            ReturnStatusPending,
		RefundType:        refundType,
		Reason:            strings.TrimSpace(reason),
		Notes:             strings.TrimSpace(notes),
		TotalAmount:       decimal.Zero,
	}, nil
}

// AddItem appends a returned line and accumulates the document total
func (r *Return) AddItem(productID uuid.UUID, batchID *uuid.UUID, quantity, unitPrice decimal.Decimal) error {
	if r.Status != ReturnStatusPending {
		return shared.NewValidationError("RETURN_COMPLETED", "Cannot add items to a completed return")
	}

	item, err := NewReturnItem(productID, batchID, quantity, unitPrice)
	if err != nil {
		return err
	}
	item.ReturnID = r.ID

	r.Items = append(r.Items, *item)
	r.TotalAmount = r.TotalAmount.Add(item.Subtotal)
	r.UpdatedAt = time.Now()
	return nil
}

// Complete seals the document. A return must carry at least one item.
func (r *Return) Complete() error {
	if r.Status != ReturnStatusPending {
		return shared.NewValidationError("RETURN_COMPLETED", "Return is already completed")
	}
	if len(r.Items) == 0 {
		return shared.NewValidationError("EMPTY_RETURN", "Return must have at least one item")
	}
	r.Status = ReturnStatusCompleted
	r.UpdatedAt = time.Now()
	return nil
}

// IsCompleted returns true if the document has been sealed
func (r *Return) IsCompleted() bool {
	return r.Status == ReturnStatusCompleted
}
