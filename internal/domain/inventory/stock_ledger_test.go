package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) ApplyProductDelta(ctx context.Context, productID uuid.UUID, delta decimal.Decimal, enforceFloor bool) error {
	args := m.Called(ctx, productID, delta, enforceFloor)
	return args.Error(0)
}

func (m *MockStockRepository) ApplyBatchDelta(ctx context.Context, batchID uuid.UUID, delta decimal.Decimal, enforceFloor bool) error {
	args := m.Called(ctx, batchID, delta, enforceFloor)
	return args.Error(0)
}

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Append(ctx context.Context, movement *StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]StockMovement, error) {
	args := m.Called(ctx, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StockMovement), args.Error(1)
}

func (m *MockMovementRepository) FindByReference(ctx context.Context, referenceType string, referenceID uuid.UUID) ([]StockMovement, error) {
	args := m.Called(ctx, referenceType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StockMovement), args.Error(1)
}

func TestStockLedger_Apply(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	batchID := uuid.New()
	refID := uuid.New()

	t.Run("adjusts product and batch and records one movement", func(t *testing.T) {
		stocks := new(MockStockRepository)
		movements := new(MockMovementRepository)
		ledger := NewStockLedger(stocks, movements, true)

		key := NewLineKey(productID, &batchID)
		qty := decimal.NewFromInt(-5)

		stocks.On("ApplyProductDelta", ctx, productID, qty, false).Return(nil)
		stocks.On("ApplyBatchDelta", ctx, batchID, qty, false).Return(nil)
		movements.On("Append", ctx, mock.MatchedBy(func(m *StockMovement) bool {
			return m.ProductID == productID &&
				m.BatchID != nil && *m.BatchID == batchID &&
				m.Kind == MovementReturnOut &&
				m.Quantity.Equal(decimal.NewFromInt(5)) &&
				m.ReferenceType == "RETURN" &&
				m.ReferenceID == refID
		})).Return(nil)

		err := ledger.Apply(ctx, key, qty, MovementReturnOut, "RETURN", refID)

		require.NoError(t, err)
		stocks.AssertExpectations(t)
		movements.AssertExpectations(t)
	})

	t.Run("skips the batch delta when the line has no batch", func(t *testing.T) {
		stocks := new(MockStockRepository)
		movements := new(MockMovementRepository)
		ledger := NewStockLedger(stocks, movements, true)

		qty := decimal.NewFromInt(3)
		stocks.On("ApplyProductDelta", ctx, productID, qty, false).Return(nil)
		movements.On("Append", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

		err := ledger.Apply(ctx, NewLineKey(productID, nil), qty, MovementReturnIn, "RETURN", refID)

		require.NoError(t, err)
		stocks.AssertNotCalled(t, "ApplyBatchDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("enforces the floor when negative stock is disallowed", func(t *testing.T) {
		stocks := new(MockStockRepository)
		movements := new(MockMovementRepository)
		ledger := NewStockLedger(stocks, movements, false)

		qty := decimal.NewFromInt(-10)
		stocks.On("ApplyProductDelta", ctx, productID, qty, true).Return(shared.ErrInsufficientStock)

		err := ledger.Apply(ctx, NewLineKey(productID, nil), qty, MovementReturnOut, "RETURN", refID)

		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		movements.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("stops before the movement when the batch delta fails", func(t *testing.T) {
		stocks := new(MockStockRepository)
		movements := new(MockMovementRepository)
		ledger := NewStockLedger(stocks, movements, false)

		key := NewLineKey(productID, &batchID)
		qty := decimal.NewFromInt(-2)
		stocks.On("ApplyProductDelta", ctx, productID, qty, true).Return(nil)
		stocks.On("ApplyBatchDelta", ctx, batchID, qty, true).Return(shared.ErrInsufficientStock)

		err := ledger.Apply(ctx, key, qty, MovementReturnOut, "RETURN", refID)

		require.Error(t, err)
		movements.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}

func TestStockMovement_SignedQuantity(t *testing.T) {
	key := NewLineKey(uuid.New(), nil)

	in, err := NewStockMovement(key, MovementReturnIn, decimal.NewFromInt(4), "RETURN", uuid.New())
	require.NoError(t, err)
	assert.True(t, in.SignedQuantity().Equal(decimal.NewFromInt(4)))

	out, err := NewStockMovement(key, MovementReturnOut, decimal.NewFromInt(4), "RETURN", uuid.New())
	require.NoError(t, err)
	assert.True(t, out.SignedQuantity().Equal(decimal.NewFromInt(-4)))
}
