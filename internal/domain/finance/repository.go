package finance

import (
	"context"

	"github.com/google/uuid"
)

// PaymentRepository defines the persistence interface for settlement records
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	FindByReference(ctx context.Context, referenceType string, referenceID uuid.UUID) ([]Payment, error)
}
