package model

import "github.com/shopspring/decimal"

const DefaultCustomerName = "N/A"

type Invoice struct {
	ID             int64           `db:"id" json:"id"`
	CustomerName   string          `db:"customer_name" json:"customer_name"`
	InvoiceDate    string          `db:"invoice_date" json:"invoice_date"`         // As entered, format follows settings
	InvoiceDateISO *string         `db:"invoice_date_iso" json:"invoice_date_iso"` // Normalised YYYY-MM-DD, nil when unparseable
	InvoiceNumber  string          `db:"invoice_number" json:"invoice_number"`
	TaxRate        decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Subtotal       decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxAmount      decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	GrandTotal     decimal.Decimal `db:"grand_total" json:"grand_total"`
	CurrencySymbol string          `db:"currency_symbol" json:"currency_symbol"`
	Items          []InvoiceItem   `db:"-" json:"items,omitempty"`
}

// InvoiceItem keeps a snapshot of the product name and price at the time of sale.
type InvoiceItem struct {
	ID          int64           `db:"id" json:"id"`
	InvoiceID   int64           `db:"invoice_id" json:"invoice_id"`
	ProductID   int64           `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Quantity    int64           `db:"quantity" json:"quantity"`
	Total       decimal.Decimal `db:"total" json:"total"`
}
