package dto

import (
	"net/http"
	"testing"

	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFor(t *testing.T) {
	t.Run("maps kinds to their default status", func(t *testing.T) {
		tests := []struct {
			kind     shared.ErrorKind
			expected int
		}{
			{shared.KindValidation, http.StatusBadRequest},
			{shared.KindNotFound, http.StatusNotFound},
			{shared.KindStorage, http.StatusInternalServerError},
			{shared.KindIntegrity, http.StatusInternalServerError},
		}
		for _, tt := range tests {
			t.Run(string(tt.kind), func(t *testing.T) {
				err := shared.NewDomainError(tt.kind, "SOME_CODE", "message")
				assert.Equal(t, tt.expected, HTTPStatusFor(err))
			})
		}
	})

	t.Run("business rule rejections override to 422", func(t *testing.T) {
		codes := []string{
			"INSUFFICIENT_STOCK",
			"RETURN_EXCEEDS_RETURNABLE",
			"LINE_NOT_ON_INVOICE",
			"INVOICE_NOT_FINALIZED",
			"INVOICE_TYPE_MISMATCH",
			"INVOICE_PARTY_MISMATCH",
			"PARTY_TYPE_MISMATCH",
			"BATCH_PRODUCT_MISMATCH",
		}
		for _, code := range codes {
			t.Run(code, func(t *testing.T) {
				err := shared.NewValidationError(code, "message")
				assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatusFor(err))
			})
		}
	})

	t.Run("conflicts override to 409", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, HTTPStatusFor(shared.ErrAlreadyExists))
		assert.Equal(t, http.StatusConflict, HTTPStatusFor(shared.ErrConcurrencyConflict))
	})

	t.Run("unknown kinds fall back to 500", func(t *testing.T) {
		err := shared.NewDomainError(shared.ErrorKind("MYSTERY"), "SOME_CODE", "message")
		assert.Equal(t, http.StatusInternalServerError, HTTPStatusFor(err))
	})

	t.Run("common sentinels map as expected", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, HTTPStatusFor(shared.ErrNotFound))
		assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatusFor(shared.ErrInsufficientStock))
	})
}
