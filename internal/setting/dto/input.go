package dto

import "github.com/shopspring/decimal"

type UpdateSettingsInput struct {
	CurrencyCode          string          `json:"currency_code"`
	CurrencySymbol        string          `json:"currency_symbol"`
	TaxRate               decimal.Decimal `json:"tax_rate"`
	TaxName               string          `json:"tax_name"`
	TaxEnabled            bool            `json:"tax_enabled"`
	CompanyName           string          `json:"company_name"`
	CompanyAddress        string          `json:"company_address"`
	CompanyPhone          string          `json:"company_phone"`
	CompanyEmail          string          `json:"company_email"`
	InvoicePrefix         string          `json:"invoice_prefix"`
	InvoiceStartingNumber int64           `json:"invoice_starting_number"`
	DateFormat            string          `json:"date_format"`
	ProductImagesEnabled  bool            `json:"product_images_enabled"`
}

type ProductImagesInput struct {
	Enabled bool `json:"enabled"`
}
