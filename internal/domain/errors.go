package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories. The HTTP layer
// maps each of these to exactly one status code; anything not listed here
// propagates as an unclassified fault.
var (
	ErrNotFound           = errors.New("not found")
	ErrCreateTooSoon      = errors.New("event must start at least one day from now")
	ErrInvalidPagination  = errors.New("page and page size must be at least 1")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryInUse      = errors.New("category is referenced by existing events")
	ErrDuplicateCategory  = errors.New("category name already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationReason identifies which structural invariant a ValidationError
// violated.
type ValidationReason string

const (
	ReasonInvalidName        ValidationReason = "invalid_name"
	ReasonInvalidDateRange   ValidationReason = "invalid_date_range"
	ReasonMissingCategory    ValidationReason = "missing_category"
	ReasonInvalidDescription ValidationReason = "invalid_description"
)

// ValidationError reports a violated structural invariant of an entity.
// It is returned by entity factories and mutation operations.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(reason ValidationReason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
