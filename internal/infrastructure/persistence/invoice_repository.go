package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoplite/backend/internal/domain/invoicing"
	"github.com/shoplite/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID, including its lines
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	var invoice invoicing.Invoice
	if err := dbFrom(ctx, r.db).
		Preload("Lines").
		First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindByNumber finds an invoice by its invoice number
func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, invoiceNumber string) (*invoicing.Invoice, error) {
	var invoice invoicing.Invoice
	if err := dbFrom(ctx, r.db).
		Preload("Lines").
		First(&invoice, "invoice_number = ?", invoiceNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindByParty finds invoices issued to a party
func (r *GormInvoiceRepository) FindByParty(ctx context.Context, partyID uuid.UUID, filter shared.Filter) ([]invoicing.Invoice, error) {
	var invoices []invoicing.Invoice
	query := dbFrom(ctx, r.db).
		Model(&invoicing.Invoice{}).
		Where("party_id = ?", partyID)
	query = applyPaging(query, filter, "created_at", "issue_date", "invoice_number")

	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindAll finds all invoices with filtering
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Invoice, error) {
	var invoices []invoicing.Invoice
	query := dbFrom(ctx, r.db).Model(&invoicing.Invoice{})
	if invoiceType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", invoiceType)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	query = applyPaging(query, filter, "created_at", "issue_date", "invoice_number")

	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Count counts invoices matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFrom(ctx, r.db).Model(&invoicing.Invoice{})
	if invoiceType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", invoiceType)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists an invoice and its lines
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *invoicing.Invoice) error {
	return dbFrom(ctx, r.db).Save(invoice).Error
}

var _ invoicing.InvoiceRepository = (*GormInvoiceRepository)(nil)
