package helpers

import (
	"net/http"
	"strconv"

	"agendahub/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the request query string.
// Missing parameters fall back to defaults; present but non-numeric or
// below-range values return ErrInvalidPagination. Page sizes above
// MaxPageSize are clamped.
func ParsePagination(r *http.Request) (domain.PaginationParams, error) {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return domain.PaginationParams{}, domain.ErrInvalidPagination
		}
		page = v
	}
	pageSize := DefaultPageSize
	if s := r.URL.Query().Get("page_size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return domain.PaginationParams{}, domain.ErrInvalidPagination
		}
		pageSize = v
		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}, nil
}

// PaginationMeta is the pagination metadata included in paginated list responses.
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta from the current page, page size,
// and total count. TotalPages is computed as ceiling(total / pageSize); if
// pageSize is 0, TotalPages is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
