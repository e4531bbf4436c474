package helpers

import (
	"errors"
	"net/http"

	"agendahub/internal/domain"
)

// Classifier maps domain error kinds to caller-visible HTTP outcomes. The
// mapping is total over the kinds enumerated in internal/domain/errors.go
// and deterministic: the same error kind always produces the same status
// and code. Anything else is an unclassified fault and maps to a generic
// 500 without leaking its message.
type Classifier struct {
	autoCreateCategory bool
}

// NewClassifier returns a Classifier. autoCreateCategory decides the
// status for ErrCategoryNotFound: when categories auto-create, the only
// way to miss one is a direct lookup (404); when they must pre-exist, a
// create referencing a missing category is structurally valid input that
// fails a state-dependent rule (422).
func NewClassifier(autoCreateCategory bool) *Classifier {
	return &Classifier{autoCreateCategory: autoCreateCategory}
}

// Classify returns the HTTP status, error code, and client-visible message
// for err. The boolean result reports whether err was a classified kind;
// callers log unclassified faults before responding.
func (c *Classifier) Classify(err error) (status int, code, message string, classified bool) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrCodeValidation, verr.Message, true
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound, domain.ErrNotFound.Error(), true
	case errors.Is(err, domain.ErrCreateTooSoon):
		return http.StatusUnprocessableEntity, ErrCodeCreateTooSoon, domain.ErrCreateTooSoon.Error(), true
	case errors.Is(err, domain.ErrInvalidPagination):
		return http.StatusBadRequest, ErrCodeInvalidPagination, domain.ErrInvalidPagination.Error(), true
	case errors.Is(err, domain.ErrCategoryNotFound):
		status := http.StatusUnprocessableEntity
		if c.autoCreateCategory {
			status = http.StatusNotFound
		}
		return status, ErrCodeCategoryNotFound, domain.ErrCategoryNotFound.Error(), true
	case errors.Is(err, domain.ErrCategoryInUse):
		return http.StatusConflict, ErrCodeCategoryInUse, domain.ErrCategoryInUse.Error(), true
	case errors.Is(err, domain.ErrDuplicateCategory):
		return http.StatusConflict, ErrCodeDuplicateCategory, domain.ErrDuplicateCategory.Error(), true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrCodeUnauthorized, domain.ErrInvalidCredentials.Error(), true
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, "internal server error", false
	}
}
