package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// InvoiceType distinguishes outgoing sales invoices from incoming import invoices
type InvoiceType string

const (
	InvoiceTypeSales  InvoiceType = "sales"
	InvoiceTypeImport InvoiceType = "import"
)

// IsValid checks if the invoice type is valid
func (t InvoiceType) IsValid() bool {
	return t == InvoiceTypeSales || t == InvoiceTypeImport
}

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusFinalized InvoiceStatus = "finalized"
)

// Invoice is a finalized or draft trade document. Only finalized invoices
// can have returns recorded against them.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type          InvoiceType     `gorm:"type:varchar(20);not null;index"`
	Status        InvoiceStatus   `gorm:"type:varchar(20);not null;default:'draft'"`
	PartyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	IssueDate     time.Time       `gorm:"not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	Lines []InvoiceLine `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceLine is a single product line on an invoice
type InvoiceLine struct {
	shared.BaseEntity
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	BatchID   *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}

// NewInvoice creates a new draft invoice
func NewInvoice(invoiceNumber string, invoiceType InvoiceType, partyID uuid.UUID, issueDate time.Time) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewValidationError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if !invoiceType.IsValid() {
		return nil, shared.NewValidationError("INVALID_INVOICE_TYPE", "Invoice type must be sales or import")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PARTY", "Party ID is required")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     invoiceNumber,
		Type:              invoiceType,
		Status:            InvoiceStatusDraft,
		PartyID:           partyID,
		IssueDate:         issueDate,
		TotalAmount:       decimal.Zero,
	}, nil
}

// AddLine appends a product line and updates the invoice total
func (inv *Invoice) AddLine(productID uuid.UUID, batchID *uuid.UUID, quantity, unitPrice decimal.Decimal) error {
	if inv.Status != InvoiceStatusDraft {
		return shared.NewValidationError("INVOICE_NOT_DRAFT", "Lines can only be added to draft invoices")
	}
	if productID == uuid.Nil {
		return shared.NewValidationError("INVALID_PRODUCT", "Product ID is required")
	}
	if !quantity.IsPositive() {
		return shared.NewValidationError("INVALID_QUANTITY", "Line quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewValidationError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}

	lineTotal := quantity.Mul(unitPrice)
	inv.Lines = append(inv.Lines, InvoiceLine{
		BaseEntity: shared.NewBaseEntity(),
		InvoiceID:  inv.ID,
		ProductID:  productID,
		BatchID:    batchID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		LineTotal:  lineTotal,
	})
	inv.TotalAmount = inv.TotalAmount.Add(lineTotal)
	inv.UpdatedAt = time.Now()
	return nil
}

// Finalize moves the invoice out of draft. Finalized invoices are immutable
// and become eligible for returns.
func (inv *Invoice) Finalize() error {
	if inv.Status != InvoiceStatusDraft {
		return shared.NewValidationError("INVOICE_NOT_DRAFT", "Only draft invoices can be finalized")
	}
	if len(inv.Lines) == 0 {
		return shared.NewValidationError("EMPTY_INVOICE", "Cannot finalize an invoice without lines")
	}
	inv.Status = InvoiceStatusFinalized
	inv.UpdatedAt = time.Now()
	return nil
}

// IsFinalized returns true if the invoice has been finalized
func (inv *Invoice) IsFinalized() bool {
	return inv.Status == InvoiceStatusFinalized
}

// BelongsTo returns true if the invoice was issued to the given party
func (inv *Invoice) BelongsTo(partyID uuid.UUID) bool {
	return inv.PartyID == partyID
}
