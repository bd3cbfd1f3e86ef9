package returns

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturn(t *testing.T) {
	invoiceID := uuid.New()
	partyID := uuid.New()

	t.Run("creates a valid return header", func(t *testing.T) {
		r, err := NewReturn("CRET-00001", ReturnTypeCustomer, invoiceID, partyID, RefundTypeCash, "damaged", "")
		require.NoError(t, err)

		assert.Equal(t, "CRET-00001", r.DocumentNumber)
		assert.Equal(t, ReturnTypeCustomer, r.Type)
		assert.Equal(t, ReturnStatusPending, r.Status)
		assert.Equal(t, RefundTypeCash, r.RefundType)
		assert.True(t, r.TotalAmount.IsZero())
		assert.NotEqual(t, uuid.Nil, r.ID)
	})

	t.Run("defaults refund type to none", func(t *testing.T) {
		r, err := NewReturn("SRET-00001", ReturnTypeSupplier, invoiceID, partyID, "", "", "")
		require.NoError(t, err)
		assert.Equal(t, RefundTypeNone, r.RefundType)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := []struct {
			name       string
			number     string
			returnType ReturnType
			invoiceID  uuid.UUID
			partyID    uuid.UUID
			refundType RefundType
			code       string
		}{
			{"empty document number", "", ReturnTypeCustomer, invoiceID, partyID, RefundTypeCash, "INVALID_DOCUMENT_NUMBER"},
			{"unknown return type", "CRET-00001", ReturnType("wholesale"), invoiceID, partyID, RefundTypeCash, "INVALID_RETURN_TYPE"},
			{"nil invoice", "CRET-00001", ReturnTypeCustomer, uuid.Nil, partyID, RefundTypeCash, "INVALID_INVOICE"},
			{"nil party", "CRET-00001", ReturnTypeCustomer, invoiceID, uuid.Nil, RefundTypeCash, "INVALID_PARTY"},
			{"unknown refund type", "CRET-00001", ReturnTypeCustomer, invoiceID, partyID, RefundType("barter"), "INVALID_REFUND_TYPE"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewReturn(tc.number, tc.returnType, tc.invoiceID, tc.partyID, tc.refundType, "", "")
				require.Error(t, err)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, shared.KindValidation, domainErr.Kind)
				assert.Equal(t, tc.code, domainErr.Code)
			})
		}
	})
}

func TestReturn_AddItem(t *testing.T) {
	newPendingReturn := func(t *testing.T) *Return {
		r, err := NewReturn("CRET-00001", ReturnTypeCustomer, uuid.New(), uuid.New(), RefundTypeCash, "", "")
		require.NoError(t, err)
		return r
	}

	t.Run("accumulates the total from item subtotals", func(t *testing.T) {
		r := newPendingReturn(t)

		require.NoError(t, r.AddItem(uuid.New(), nil, decimal.NewFromInt(3), decimal.NewFromFloat(10.50)))
		require.NoError(t, r.AddItem(uuid.New(), nil, decimal.NewFromInt(2), decimal.NewFromFloat(4.25)))

		assert.Len(t, r.Items, 2)
		assert.True(t, r.TotalAmount.Equal(decimal.NewFromFloat(40.00)),
			"expected 40.00, got %s", r.TotalAmount)
	})

	t.Run("links items to the return", func(t *testing.T) {
		r := newPendingReturn(t)
		require.NoError(t, r.AddItem(uuid.New(), nil, decimal.NewFromInt(1), decimal.NewFromInt(5)))
		assert.Equal(t, r.ID, r.Items[0].ReturnID)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		r := newPendingReturn(t)
		err := r.AddItem(uuid.New(), nil, decimal.Zero, decimal.NewFromInt(5))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		r := newPendingReturn(t)
		err := r.AddItem(uuid.New(), nil, decimal.NewFromInt(1), decimal.NewFromInt(-1))
		require.Error(t, err)
	})

	t.Run("rejects items after completion", func(t *testing.T) {
		r := newPendingReturn(t)
		require.NoError(t, r.AddItem(uuid.New(), nil, decimal.NewFromInt(1), decimal.NewFromInt(5)))
		require.NoError(t, r.Complete())

		err := r.AddItem(uuid.New(), nil, decimal.NewFromInt(1), decimal.NewFromInt(5))
		require.Error(t, err)
	})
}

func TestReturn_Complete(t *testing.T) {
	t.Run("seals a return with items", func(t *testing.T) {
		r, err := NewReturn("CRET-00001", ReturnTypeCustomer, uuid.New(), uuid.New(), RefundTypeCash, "", "")
		require.NoError(t, err)
		require.NoError(t, r.AddItem(uuid.New(), nil, decimal.NewFromInt(1), decimal.NewFromInt(5)))

		require.NoError(t, r.Complete())
		assert.True(t, r.IsCompleted())
	})

	t.Run("rejects an empty return", func(t *testing.T) {
		r, err := NewReturn("CRET-00001", ReturnTypeCustomer, uuid.New(), uuid.New(), RefundTypeCash, "", "")
		require.NoError(t, err)

		err = r.Complete()
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_RETURN", domainErr.Code)
	})

	t.Run("rejects double completion", func(t *testing.T) {
		r, err := NewReturn("CRET-00001", ReturnTypeCustomer, uuid.New(), uuid.New(), RefundTypeCash, "", "")
		require.NoError(t, err)
		require.NoError(t, r.AddItem(uuid.New(), nil, decimal.NewFromInt(1), decimal.NewFromInt(5)))
		require.NoError(t, r.Complete())

		assert.Error(t, r.Complete())
	})
}
