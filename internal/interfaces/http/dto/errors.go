package dto

import (
	"net/http"

	"github.com/shoplite/backend/internal/domain/shared"
)

// General error codes used by the HTTP layer itself
const (
	ErrCodeInternal    = "ERR_INTERNAL"
	ErrCodeBadRequest  = "ERR_BAD_REQUEST"
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	ErrCodeNotFound    = "NOT_FOUND"
)

// kindHTTPStatus maps error kinds to their default HTTP status
var kindHTTPStatus = map[shared.ErrorKind]int{
	shared.KindValidation: http.StatusBadRequest,
	shared.KindNotFound:   http.StatusNotFound,
	shared.KindStorage:    http.StatusInternalServerError,
	shared.KindIntegrity:  http.StatusInternalServerError,
}

// codeHTTPStatus overrides the kind default for specific codes. Business
// rule rejections are 422 rather than 400: the request is well-formed, the
// domain just refuses it.
var codeHTTPStatus = map[string]int{
	"INSUFFICIENT_STOCK":        http.StatusUnprocessableEntity,
	"RETURN_EXCEEDS_RETURNABLE": http.StatusUnprocessableEntity,
	"LINE_NOT_ON_INVOICE":       http.StatusUnprocessableEntity,
	"INVOICE_NOT_FINALIZED":     http.StatusUnprocessableEntity,
	"INVOICE_TYPE_MISMATCH":     http.StatusUnprocessableEntity,
	"INVOICE_PARTY_MISMATCH":    http.StatusUnprocessableEntity,
	"PARTY_TYPE_MISMATCH":       http.StatusUnprocessableEntity,
	"BATCH_PRODUCT_MISMATCH":    http.StatusUnprocessableEntity,
	"ALREADY_EXISTS":            http.StatusConflict,
	"CONCURRENCY_CONFLICT":      http.StatusConflict,
}

// HTTPStatusFor returns the HTTP status for a domain error
func HTTPStatusFor(err *shared.DomainError) int {
	if status, ok := codeHTTPStatus[err.Code]; ok {
		return status
	}
	if status, ok := kindHTTPStatus[err.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}
