package dto

type ProductFilters struct {
	SearchQuery string // Case-insensitive substring of the name
	Page        int
	PageSize    int // 0 returns every match
}
