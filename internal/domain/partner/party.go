package partner

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// PartyType distinguishes the two kinds of trading parties
type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeSupplier PartyType = "supplier"
)

// IsValid checks if the party type is valid
func (t PartyType) IsValid() bool {
	return t == PartyTypeCustomer || t == PartyTypeSupplier
}

// Party represents a customer or supplier the shop trades with.
//
// Balance is a running total whose sign reads per party type: a positive
// customer balance means the customer owes the shop, a positive supplier
// balance means the shop owes the supplier. Returns always decrease it by
// the return total, regardless of direction. It is mutated only through the
// finance balance ledger, never assigned directly.
type Party struct {
	shared.BaseAggregateRoot
	Type    PartyType       `gorm:"type:varchar(20);not null;index"`
	Code    string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name    string          `gorm:"type:varchar(200);not null"`
	Phone   string          `gorm:"type:varchar(50)"`
	Email   string          `gorm:"type:varchar(200)"`
	Address string          `gorm:"type:text"`
	Balance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Party) TableName() string {
	return "parties"
}

// NewParty creates a new party
func NewParty(partyType PartyType, code, name string) (*Party, error) {
	if !partyType.IsValid() {
		return nil, shared.NewValidationError("INVALID_PARTY_TYPE", "Party type must be customer or supplier")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewValidationError("INVALID_CODE", "Party code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("INVALID_NAME", "Party name cannot be empty")
	}

	return &Party{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              partyType,
		Code:              code,
		Name:              name,
		Balance:           decimal.Zero,
	}, nil
}

// IsCustomer returns true if the party is a customer
func (p *Party) IsCustomer() bool {
	return p.Type == PartyTypeCustomer
}

// IsSupplier returns true if the party is a supplier
func (p *Party) IsSupplier() bool {
	return p.Type == PartyTypeSupplier
}
