package invoicing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/backend/internal/domain/shared"
)

// InvoiceRepository defines the persistence interface for invoices.
// FindByID loads the invoice together with its lines.
type InvoiceRepository interface {
	shared.Repository[Invoice]
	FindByNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)
	FindByParty(ctx context.Context, partyID uuid.UUID, filter shared.Filter) ([]Invoice, error)
}
