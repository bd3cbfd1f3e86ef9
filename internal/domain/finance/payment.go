package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// PaymentType categorizes settlement records produced by returns
type PaymentType string

const (
	// PaymentCustomerRefund is cash handed back to a customer
	PaymentCustomerRefund PaymentType = "customer_refund"
	// PaymentSupplierCredit is a credit note received from a supplier
	PaymentSupplierCredit PaymentType = "supplier_credit"
)

// IsValid checks if the payment type is valid
func (t PaymentType) IsValid() bool {
	return t == PaymentCustomerRefund || t == PaymentSupplierCredit
}

// PaymentMethod is how the settlement was carried out
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCredit PaymentMethod = "credit"
)

// Payment records one settlement against a party, linked back to the
// document that produced it.
type Payment struct {
	shared.BaseEntity
	Type          PaymentType     `gorm:"type:varchar(30);not null;index"`
	Method        PaymentMethod   `gorm:"type:varchar(20);not null"`
	PartyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReferenceType string          `gorm:"type:varchar(50);not null"`
	ReferenceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaidAt        time.Time       `gorm:"not null"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a settlement record
func NewPayment(paymentType PaymentType, method PaymentMethod, partyID uuid.UUID, amount decimal.Decimal, referenceType string, referenceID uuid.UUID, notes string) (*Payment, error) {
	if !paymentType.IsValid() {
		return nil, shared.NewValidationError("INVALID_PAYMENT_TYPE", "Unknown payment type")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PARTY", "Party ID is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if referenceType == "" || referenceID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_REFERENCE", "Payment reference is required")
	}

	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		Type:          paymentType,
		Method:        method,
		PartyID:       partyID,
		Amount:        amount,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		PaidAt:        time.Now(),
		Notes:         notes,
	}, nil
}
