package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/backend/internal/domain/finance"
	"gorm.io/gorm"
)

// GormPaymentRepository implements finance.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Save inserts a payment record
func (r *GormPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	return dbFrom(ctx, r.db).Create(payment).Error
}

// FindByReference finds the payments recorded for a document
func (r *GormPaymentRepository) FindByReference(ctx context.Context, referenceType string, referenceID uuid.UUID) ([]finance.Payment, error) {
	var payments []finance.Payment
	if err := dbFrom(ctx, r.db).
		Where("reference_type = ? AND reference_id = ?", referenceType, referenceID).
		Order("paid_at").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
