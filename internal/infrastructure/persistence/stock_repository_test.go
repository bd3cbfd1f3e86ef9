package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM handle backed by a mocked SQL connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormStockRepository_ApplyProductDelta(t *testing.T) {
	t.Run("applies the delta as a single arithmetic update", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockRepository(db)

		productID := uuid.New()

		mock.ExpectExec(`UPDATE "products" SET "current_stock"=current_stock \+ \$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ApplyProductDelta(context.Background(), productID, decimal.NewFromInt(5), false)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("adds the floor guard when negative stock is disallowed", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockRepository(db)

		productID := uuid.New()

		mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$3 AND current_stock \+ \$4 >= 0`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ApplyProductDelta(context.Background(), productID, decimal.NewFromInt(-5), true)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports insufficient stock when the guard blocks an existing row", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockRepository(db)

		productID := uuid.New()

		mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$3 AND current_stock \+ \$4 >= 0`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.ApplyProductDelta(context.Background(), productID, decimal.NewFromInt(-100), true)

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports not found when the row does not exist", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockRepository(db)

		productID := uuid.New()

		mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$3 AND current_stock \+ \$4 >= 0`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.ApplyProductDelta(context.Background(), productID, decimal.NewFromInt(-1), true)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports not found without a lookup when no guard was active", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockRepository(db)

		productID := uuid.New()

		mock.ExpectExec(`UPDATE "products" SET .* WHERE id = \$3`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ApplyProductDelta(context.Background(), productID, decimal.NewFromInt(1), false)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockRepository_ApplyBatchDelta(t *testing.T) {
	t.Run("adjusts the batch quantity", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockRepository(db)

		batchID := uuid.New()

		mock.ExpectExec(`UPDATE "product_batches" SET "quantity"=quantity \+ \$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), batchID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ApplyBatchDelta(context.Background(), batchID, decimal.NewFromInt(3), false)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("enforces the floor on batches too", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockRepository(db)

		batchID := uuid.New()

		mock.ExpectExec(`UPDATE "product_batches" SET .* WHERE id = \$3 AND quantity \+ \$4 >= 0`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "product_batches" WHERE id = \$1`).
			WithArgs(batchID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.ApplyBatchDelta(context.Background(), batchID, decimal.NewFromInt(-50), true)

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
