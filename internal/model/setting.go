package model

import "github.com/shopspring/decimal"

// SettingID is the primary key of the only settings row.
const SettingID = 1

const (
	DefaultInvoicePrefix  = "INV-"
	DefaultStartingNumber = 1000
	DefaultDateFormat     = "DD/MM/YYYY"
)

type Setting struct {
	ID                    int64           `db:"id" json:"id"`
	CurrencyCode          string          `db:"currency_code" json:"currency_code"`
	CurrencySymbol        string          `db:"currency_symbol" json:"currency_symbol"`
	TaxRate               decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	TaxName               string          `db:"tax_name" json:"tax_name"`
	TaxEnabled            bool            `db:"tax_enabled" json:"tax_enabled"`
	CompanyName           string          `db:"company_name" json:"company_name"`
	CompanyAddress        string          `db:"company_address" json:"company_address"`
	CompanyPhone          string          `db:"company_phone" json:"company_phone"`
	CompanyEmail          string          `db:"company_email" json:"company_email"`
	InvoicePrefix         string          `db:"invoice_prefix" json:"invoice_prefix"`
	InvoiceStartingNumber int64           `db:"invoice_starting_number" json:"invoice_starting_number"`
	DateFormat            string          `db:"date_format" json:"date_format"`
	ProductImagesEnabled  bool            `db:"product_images_enabled" json:"product_images_enabled"`
}

func DefaultSetting() Setting {
	return Setting{
		ID:                    SettingID,
		CurrencyCode:          "INR",
		CurrencySymbol:        "₹",
		TaxRate:               decimal.NewFromInt(18),
		TaxName:               "GST",
		TaxEnabled:            true,
		InvoicePrefix:         DefaultInvoicePrefix,
		InvoiceStartingNumber: DefaultStartingNumber,
		DateFormat:            DefaultDateFormat,
		ProductImagesEnabled:  true,
	}
}
