package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shoplite/backend/internal/domain/numbering"
	"github.com/shoplite/backend/internal/domain/returns"
	"github.com/shoplite/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSequenceAllocator implements numbering.Allocator over a
// document_sequences table. The partition row is locked FOR UPDATE for the
// duration of the caller's transaction, which serializes allocation: two
// concurrent requests can never observe the same counter value, and a rolled
// back transaction releases its number together with the rest of its writes.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new GormSequenceAllocator
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next allocates the next document number in the partition
func (a *GormSequenceAllocator) Next(ctx context.Context, partition numbering.Partition) (string, error) {
	if !partition.IsValid() {
		return "", shared.NewValidationError("INVALID_PARTITION", "Unknown document number partition")
	}
	db := dbFrom(ctx, a.db)

	var seq numbering.DocumentSequence
	err := db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&seq, "key = ?", partition).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seeded, seedErr := a.seed(ctx, db, partition)
		if seedErr != nil {
			return "", seedErr
		}
		seq = *seeded
	} else if err != nil {
		return "", err
	}

	seq.LastNumber++
	if err := db.
		Model(&numbering.DocumentSequence{}).
		Where("key = ?", partition).
		UpdateColumns(map[string]interface{}{
			"last_number": seq.LastNumber,
			"updated_at":  time.Now(),
		}).Error; err != nil {
		return "", err
	}

	return numbering.FormatNumber(partition, seq.LastNumber), nil
}

// seed creates the partition row, starting from the highest document number
// already present so legacy documents keep their place in the sequence. A
// corrupted legacy number aborts the allocation instead of silently
// restarting the partition at zero.
func (a *GormSequenceAllocator) seed(ctx context.Context, db *gorm.DB, partition numbering.Partition) (*numbering.DocumentSequence, error) {
	// Longer numbers sort first so the ordering stays numeric once a
	// partition grows past the zero-pad width.
	var last string
	err := db.
		Model(&returns.Return{}).
		Where("document_number LIKE ?", partition.Prefix()+"%").
		Order("length(document_number) DESC, document_number DESC").
		Limit(1).
		Pluck("document_number", &last).Error
	if err != nil {
		return nil, err
	}

	var lastNumber int64
	if last != "" {
		lastNumber, err = numbering.ParseNumber(partition, last)
		if err != nil {
			return nil, err
		}
	}

	seq := numbering.DocumentSequence{
		Key:        partition,
		LastNumber: lastNumber,
		UpdatedAt:  time.Now(),
	}
	if err := db.Create(&seq).Error; err != nil {
		return nil, err
	}
	return &seq, nil
}

var _ numbering.Allocator = (*GormSequenceAllocator)(nil)
