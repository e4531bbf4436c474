package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Validate returns ErrInvalidPagination when Page or PageSize is below 1.
func (p PaginationParams) Validate() error {
	if p.Page < 1 || p.PageSize < 1 {
		return ErrInvalidPagination
	}
	return nil
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the maximum number of rows for the current page.
func (p PaginationParams) Limit() int {
	return p.PageSize
}
