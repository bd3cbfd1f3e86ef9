package returns

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/shared"
)

// SummaryRow is one aggregated reporting bucket
type SummaryRow struct {
	Type        ReturnType      `json:"type"`
	Reason      string          `json:"reason"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ReturnRepository defines the persistence interface for return documents.
// FindByID and FindByNumber load the document together with its items.
type ReturnRepository interface {
	shared.Repository[Return]
	FindByNumber(ctx context.Context, documentNumber string) (*Return, error)

	// LastDocumentNumber returns the highest existing document number with
	// the given prefix, or "" when none exist. Used to seed a fresh
	// numbering partition from pre-existing documents.
	LastDocumentNumber(ctx context.Context, prefix string) (string, error)

	// SumReturnedQuantities aggregates completed return items against the
	// invoice, grouped by stock line.
	SumReturnedQuantities(ctx context.Context, invoiceID uuid.UUID) (map[inventory.LineKey]decimal.Decimal, error)

	// Summary aggregates completed returns by type and reason within the
	// optional time window.
	Summary(ctx context.Context, from, to *time.Time) ([]SummaryRow, error)
}
