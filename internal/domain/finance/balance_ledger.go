package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/partner"
)

// BalanceLedger adjusts party balances. Like the stock ledger it expects to
// run inside an enclosing transaction so the adjustment commits with the
// document that caused it.
type BalanceLedger struct {
	parties partner.PartyRepository
}

// NewBalanceLedger creates a balance ledger service
func NewBalanceLedger(parties partner.PartyRepository) *BalanceLedger {
	return &BalanceLedger{parties: parties}
}

// Adjust applies a signed delta to the party balance
func (l *BalanceLedger) Adjust(ctx context.Context, partyID uuid.UUID, delta decimal.Decimal) error {
	return l.parties.AdjustBalance(ctx, partyID, delta)
}

// ApplyReturn records the balance effect of a return: the party's
// outstanding balance drops by the return total in both directions. A
// customer return reduces what the customer owes us; a supplier return
// reduces what we owe the supplier.
func (l *BalanceLedger) ApplyReturn(ctx context.Context, partyID uuid.UUID, total decimal.Decimal) error {
	return l.Adjust(ctx, partyID, total.Neg())
}
