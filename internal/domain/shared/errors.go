package shared

import "fmt"

// ErrorKind classifies a domain error into one of the four failure families
// the system distinguishes. Every error that crosses the application boundary
// carries exactly one kind.
type ErrorKind string

const (
	// KindValidation marks malformed or missing request data, rejected before any write
	KindValidation ErrorKind = "VALIDATION"
	// KindNotFound marks a referenced product, party or document that does not exist
	KindNotFound ErrorKind = "NOT_FOUND"
	// KindStorage marks an underlying persistence failure
	KindStorage ErrorKind = "STORAGE"
	// KindIntegrity marks upstream data corruption (unparseable document number,
	// negative returnable quantity)
	KindIntegrity ErrorKind = "INTEGRITY"
)

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error of the given kind
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error
func NewValidationError(code, message string) *DomainError {
	return NewDomainError(KindValidation, code, message)
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(code, message string) *DomainError {
	return NewDomainError(KindNotFound, code, message)
}

// NewIntegrityError creates an integrity error
func NewIntegrityError(code, message string) *DomainError {
	return NewDomainError(KindIntegrity, code, message)
}

// NewStorageError wraps an underlying persistence failure
func NewStorageError(op string, err error) *DomainError {
	return NewDomainError(KindStorage, "STORAGE_FAILURE", fmt.Sprintf("%s: %v", op, err))
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError(KindNotFound, "NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError(KindValidation, "ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError(KindValidation, "INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError(KindStorage, "CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError(KindValidation, "INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError(KindValidation, "INSUFFICIENT_STOCK", "Insufficient stock available")
)
