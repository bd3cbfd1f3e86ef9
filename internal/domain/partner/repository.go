package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
)

// PartyRepository defines the persistence interface for parties
type PartyRepository interface {
	shared.Repository[Party]
	FindByCode(ctx context.Context, code string) (*Party, error)

	// AdjustBalance applies a signed delta to the party balance as a single
	// atomic increment in the database. Returns shared.ErrNotFound if the
	// party does not exist.
	AdjustBalance(ctx context.Context, partyID uuid.UUID, delta decimal.Decimal) error
}
