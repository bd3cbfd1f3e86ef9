package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/returns"
	"github.com/shoplite/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReturnRepository implements returns.ReturnRepository using GORM
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GormReturnRepository
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// FindByID finds a return by its ID, including its items
func (r *GormReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*returns.Return, error) {
	var ret returns.Return
	if err := dbFrom(ctx, r.db).
		Preload("Items").
		First(&ret, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// FindByNumber finds a return by its document number
func (r *GormReturnRepository) FindByNumber(ctx context.Context, documentNumber string) (*returns.Return, error) {
	var ret returns.Return
	if err := dbFrom(ctx, r.db).
		Preload("Items").
		First(&ret, "document_number = ?", documentNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// FindAll finds returns with filtering
func (r *GormReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]returns.Return, error) {
	var results []returns.Return
	query := r.applyFilter(dbFrom(ctx, r.db).Model(&returns.Return{}).Preload("Items"), filter)
	query = applyPaging(query, filter, "created_at", "document_number", "total_amount")

	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Count counts returns matching the filter
func (r *GormReturnRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(dbFrom(ctx, r.db).Model(&returns.Return{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a return together with its items
func (r *GormReturnRepository) Save(ctx context.Context, ret *returns.Return) error {
	return dbFrom(ctx, r.db).Create(ret).Error
}

// LastDocumentNumber returns the highest document number with the given
// prefix, or "" when none exist. Zero-padded numbers sort correctly as text.
func (r *GormReturnRepository) LastDocumentNumber(ctx context.Context, prefix string) (string, error) {
	var number string
	err := dbFrom(ctx, r.db).
		Model(&returns.Return{}).
		Where("document_number LIKE ?", prefix+"%").
		Order("document_number DESC").
		Limit(1).
		Pluck("document_number", &number).Error
	if err != nil {
		return "", err
	}
	return number, nil
}

type returnedQuantityRow struct {
	ProductID uuid.UUID
	BatchID   *uuid.UUID
	Quantity  decimal.Decimal
}

// SumReturnedQuantities aggregates completed return items against the
// invoice, grouped by product and batch
func (r *GormReturnRepository) SumReturnedQuantities(ctx context.Context, invoiceID uuid.UUID) (map[inventory.LineKey]decimal.Decimal, error) {
	var rows []returnedQuantityRow
	err := dbFrom(ctx, r.db).
		Model(&returns.ReturnItem{}).
		Select("return_items.product_id, return_items.batch_id, SUM(return_items.quantity) AS quantity").
		Joins("JOIN returns ON returns.id = return_items.return_id").
		Where("returns.invoice_id = ? AND returns.status = ?", invoiceID, returns.ReturnStatusCompleted).
		Group("return_items.product_id, return_items.batch_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[inventory.LineKey]decimal.Decimal, len(rows))
	for _, row := range rows {
		result[inventory.NewLineKey(row.ProductID, row.BatchID)] = row.Quantity
	}
	return result, nil
}

// Summary aggregates completed returns by type and reason within the
// optional time window
func (r *GormReturnRepository) Summary(ctx context.Context, from, to *time.Time) ([]returns.SummaryRow, error) {
	var rows []returns.SummaryRow
	query := dbFrom(ctx, r.db).
		Model(&returns.Return{}).
		Select("type, reason, COUNT(*) AS count, SUM(total_amount) AS total_amount").
		Where("status = ?", returns.ReturnStatusCompleted)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}
	err := query.
		Group("type, reason").
		Order("type, reason").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormReturnRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if returnType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", returnType)
	}
	if partyID, ok := filter.Filters["party_id"]; ok {
		query = query.Where("party_id = ?", partyID)
	}
	if invoiceID, ok := filter.Filters["invoice_id"]; ok {
		query = query.Where("invoice_id = ?", invoiceID)
	}
	if startDate, ok := filter.Filters["start_date"]; ok {
		query = query.Where("created_at >= ?", startDate)
	}
	if endDate, ok := filter.Filters["end_date"]; ok {
		query = query.Where("created_at < ?", endDate)
	}
	return query
}

var _ returns.ReturnRepository = (*GormReturnRepository)(nil)
