package dto

// PaginatedQueryParams are the query parameters shared by all list endpoints.
// Page is zero-based.
type PaginatedQueryParams struct {
	Page  int `form:"page,default=0" binding:"min=0"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// PaginationMetadata describes the position of a page within the full result
// set. TotalPages is ceil(TotalItems/PageSize).
type PaginationMetadata struct {
	CurrentPage     int   `json:"currentPage"`
	PageSize        int   `json:"pageSize"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// PaginatedResponse pairs a page of items with its pagination metadata.
type PaginatedResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination PaginationMetadata `json:"pagination"`
}

// NewPaginationMetadata computes the metadata for a zero-based page.
func NewPaginationMetadata(page, limit int, totalItems int64) PaginationMetadata {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	return PaginationMetadata{
		CurrentPage:     page,
		PageSize:        limit,
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages-1,
		HasPreviousPage: page > 0,
	}
}

// NewPaginatedResponse assembles the page envelope.
func NewPaginatedResponse[T any](data []T, page, limit int, totalItems int64) PaginatedResponse[T] {
	return PaginatedResponse[T]{
		Data:       data,
		Pagination: NewPaginationMetadata(page, limit, totalItems),
	}
}
