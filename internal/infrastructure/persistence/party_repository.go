package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/partner"
	"github.com/shoplite/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPartyRepository implements partner.PartyRepository using GORM
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a new GormPartyRepository
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

// FindByID finds a party by its ID
func (r *GormPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Party, error) {
	var party partner.Party
	if err := dbFrom(ctx, r.db).
		First(&party, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &party, nil
}

// FindByCode finds a party by its code
func (r *GormPartyRepository) FindByCode(ctx context.Context, code string) (*partner.Party, error) {
	var party partner.Party
	if err := dbFrom(ctx, r.db).
		First(&party, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &party, nil
}

// FindAll finds all parties with filtering
func (r *GormPartyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Party, error) {
	var parties []partner.Party
	query := dbFrom(ctx, r.db).Model(&partner.Party{})
	if partyType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", partyType)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ?", search, search)
	}
	query = applyPaging(query, filter, "created_at", "code", "name")

	if err := query.Find(&parties).Error; err != nil {
		return nil, err
	}
	return parties, nil
}

// Count counts parties matching the filter
func (r *GormPartyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFrom(ctx, r.db).Model(&partner.Party{})
	if partyType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", partyType)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a party
func (r *GormPartyRepository) Save(ctx context.Context, party *partner.Party) error {
	return dbFrom(ctx, r.db).Save(party).Error
}

// AdjustBalance applies a signed delta to the party balance with a single
// atomic UPDATE, so concurrent adjustments never lose writes
func (r *GormPartyRepository) AdjustBalance(ctx context.Context, partyID uuid.UUID, delta decimal.Decimal) error {
	result := dbFrom(ctx, r.db).
		Model(&partner.Party{}).
		Where("id = ?", partyID).
		UpdateColumns(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ partner.PartyRepository = (*GormPartyRepository)(nil)
