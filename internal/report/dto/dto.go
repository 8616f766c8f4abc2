package dto

import (
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/shopspring/decimal"
)

type PeriodSummary struct {
	Period       string          `json:"period"`
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type RankingFilters struct {
	Search string
	Page   int
	Limit  int
}

type ProductRanking struct {
	ProductID     int64           `db:"product_id" json:"product_id"`
	ProductName   string          `db:"product_name" json:"product_name"`
	TotalQuantity int64           `db:"total_quantity" json:"total_quantity"`
	InvoiceCount  int64           `db:"invoice_count" json:"invoice_count"`
	TotalRevenue  decimal.Decimal `db:"total_revenue" json:"total_revenue"`
	LastOrdered   *string         `db:"last_ordered" json:"last_ordered"` // YYYY-MM-DD, nil when no date parsed
}

type RankingPage struct {
	Products   []ProductRanking `json:"products"`
	Pagination model.Pagination `json:"pagination"`
}
