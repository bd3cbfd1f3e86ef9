package returns

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/invoicing"
	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalizedInvoice(t *testing.T, lines ...invoicing.InvoiceLine) *invoicing.Invoice {
	t.Helper()
	inv, err := invoicing.NewInvoice("INV-001", invoicing.InvoiceTypeSales, uuid.New(), time.Now())
	require.NoError(t, err)
	inv.Lines = lines
	return inv
}

func line(productID uuid.UUID, batchID *uuid.UUID, qty int64) invoicing.InvoiceLine {
	return invoicing.InvoiceLine{
		ProductID: productID,
		BatchID:   batchID,
		Quantity:  decimal.NewFromInt(qty),
		UnitPrice: decimal.NewFromInt(10),
	}
}

func TestComputeReturnable(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()
	batch1 := uuid.New()

	t.Run("subtracts returned from ordered per line", func(t *testing.T) {
		inv := finalizedInvoice(t, line(productA, nil, 10), line(productB, nil, 4))
		returned := map[inventory.LineKey]decimal.Decimal{
			inventory.NewLineKey(productA, nil): decimal.NewFromInt(3),
		}

		lines, err := ComputeReturnable(inv, returned)
		require.NoError(t, err)
		require.Len(t, lines, 2)

		assert.True(t, lines[0].OrderedQuantity.Equal(decimal.NewFromInt(10)))
		assert.True(t, lines[0].ReturnedQuantity.Equal(decimal.NewFromInt(3)))
		assert.True(t, lines[0].ReturnableQuantity.Equal(decimal.NewFromInt(7)))

		assert.True(t, lines[1].ReturnedQuantity.IsZero())
		assert.True(t, lines[1].ReturnableQuantity.Equal(decimal.NewFromInt(4)))
	})

	t.Run("merges invoice lines sharing product and batch", func(t *testing.T) {
		inv := finalizedInvoice(t, line(productA, &batch1, 5), line(productA, &batch1, 3))

		lines, err := ComputeReturnable(inv, nil)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].OrderedQuantity.Equal(decimal.NewFromInt(8)))
	})

	t.Run("keeps unbatched lines separate from batched lines of the same product", func(t *testing.T) {
		inv := finalizedInvoice(t, line(productA, &batch1, 5), line(productA, nil, 2))
		returned := map[inventory.LineKey]decimal.Decimal{
			inventory.NewLineKey(productA, &batch1): decimal.NewFromInt(5),
		}

		lines, err := ComputeReturnable(inv, returned)
		require.NoError(t, err)
		require.Len(t, lines, 2)

		assert.True(t, lines[0].ReturnableQuantity.IsZero())
		assert.True(t, lines[1].ReturnableQuantity.Equal(decimal.NewFromInt(2)))
	})

	t.Run("keeps fully returned lines with zero returnable", func(t *testing.T) {
		inv := finalizedInvoice(t, line(productA, nil, 5))
		returned := map[inventory.LineKey]decimal.Decimal{
			inventory.NewLineKey(productA, nil): decimal.NewFromInt(5),
		}

		lines, err := ComputeReturnable(inv, returned)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].ReturnableQuantity.IsZero())
	})

	t.Run("reports over-returned lines as integrity errors", func(t *testing.T) {
		inv := finalizedInvoice(t, line(productA, nil, 5))
		returned := map[inventory.LineKey]decimal.Decimal{
			inventory.NewLineKey(productA, nil): decimal.NewFromInt(6),
		}

		_, err := ComputeReturnable(inv, returned)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.KindIntegrity, domainErr.Kind)
		assert.Equal(t, "RETURNED_EXCEEDS_ORDERED", domainErr.Code)
	})

	t.Run("preserves first-appearance order of lines", func(t *testing.T) {
		inv := finalizedInvoice(t, line(productB, nil, 1), line(productA, nil, 2), line(productB, nil, 3))

		lines, err := ComputeReturnable(inv, nil)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, productB, lines[0].Key.ProductID)
		assert.True(t, lines[0].OrderedQuantity.Equal(decimal.NewFromInt(4)))
		assert.Equal(t, productA, lines[1].Key.ProductID)
	})
}
