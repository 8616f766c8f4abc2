package dto

import "github.com/shopspring/decimal"

type CreateInvoiceInput struct {
	CustomerName  string            `json:"customer_name"`
	InvoiceDate   string            `json:"invoice_date"`
	InvoiceNumber string            `json:"invoice_number"`
	TaxRate       *decimal.Decimal  `json:"tax_rate"`
	Items         []CreateItemInput `json:"items"`
}

// CreateItemInput names a catalog product. ProductName and Price are only used when
// the product no longer exists in the catalog.
type CreateItemInput struct {
	ProductID   int64            `json:"product_id"`
	ProductName string           `json:"product_name"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    int64            `json:"quantity"`
}
