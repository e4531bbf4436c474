package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Each code corresponds to exactly
// one error kind in the classifier.
const (
	ErrCodeBadRequest        = "bad_request"
	ErrCodeNotFound          = "not_found"
	ErrCodeValidation        = "validation_error"
	ErrCodeCreateTooSoon     = "create_too_soon"
	ErrCodeInvalidPagination = "invalid_pagination"
	ErrCodeCategoryNotFound  = "category_not_found"
	ErrCodeCategoryInUse     = "category_in_use"
	ErrCodeDuplicateCategory = "duplicate_category"
	ErrCodeUnauthorized      = "unauthorized"
	ErrCodeInternalError     = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// PaginatedResponse is the data payload for paginated list endpoints.
type PaginatedResponse struct {
	Items any            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode,
// and encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}
