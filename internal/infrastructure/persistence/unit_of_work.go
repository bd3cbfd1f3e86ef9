package persistence

import (
	"context"

	"github.com/shoplite/backend/internal/domain/shared"
	"gorm.io/gorm"
)

type txKey struct{}

// GormUnitOfWork implements shared.UnitOfWork over a GORM transaction. The
// transaction handle travels in the context, so every repository called with
// that context joins the same transaction.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a unit of work bound to the given connection
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Do runs fn inside a single transaction. A nested call reuses the
// transaction already carried by the context instead of opening a new one.
func (u *GormUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom returns the transaction carried by the context, or the fallback
// connection scoped to the context when no transaction is open.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

var _ shared.UnitOfWork = (*GormUnitOfWork)(nil)
