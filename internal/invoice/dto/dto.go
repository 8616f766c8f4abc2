package dto

import "github.com/fekuna/omnipos-invoice-service/internal/model"

type InvoiceFilters struct {
	Search    string // Customer name or invoice number
	Customer  string
	Product   string // Any line item's product name
	StartDate string // Inclusive, any format period.Parse accepts
	EndDate   string // Inclusive
	Page      int
	Limit     int // 0 returns every match
}

type InvoiceList struct {
	Invoices   []model.Invoice  `json:"invoices"`
	Pagination model.Pagination `json:"pagination"`
}
