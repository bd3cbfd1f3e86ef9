package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLedger applies signed stock deltas and records the matching movement.
// It must be called inside an enclosing transaction so the product update,
// the batch update and the movement row commit or roll back together.
type StockLedger struct {
	stocks        StockRepository
	movements     MovementRepository
	allowNegative bool
}

// NewStockLedger creates a stock ledger service. When allowNegative is false,
// deltas that would drive a product or batch quantity below zero are rejected.
func NewStockLedger(stocks StockRepository, movements MovementRepository, allowNegative bool) *StockLedger {
	return &StockLedger{
		stocks:        stocks,
		movements:     movements,
		allowNegative: allowNegative,
	}
}

// Apply adjusts the product quantity, the batch quantity when the line has a
// batch, and appends exactly one movement row for the adjustment. The
// quantity is signed: positive adds stock, negative removes it.
func (l *StockLedger) Apply(ctx context.Context, key LineKey, quantity decimal.Decimal, kind MovementKind, referenceType string, referenceID uuid.UUID) error {
	enforceFloor := !l.allowNegative

	if err := l.stocks.ApplyProductDelta(ctx, key.ProductID, quantity, enforceFloor); err != nil {
		return err
	}
	if key.HasBatch() {
		if err := l.stocks.ApplyBatchDelta(ctx, key.BatchID, quantity, enforceFloor); err != nil {
			return err
		}
	}

	movement, err := NewStockMovement(key, kind, quantity.Abs(), referenceType, referenceID)
	if err != nil {
		return err
	}
	return l.movements.Append(ctx, movement)
}
