package model

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Pagination struct {
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// NormalizePage clamps page to at least 1 and limit to [1, MaxPageSize], using
// DefaultPageSize when limit is not positive.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

func NewPagination(total, page, limit int) Pagination {
	return Pagination{
		Total:       total,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
		Limit:       limit,
	}
}
