// Package export renders invoices as CSV, spreadsheet payloads and PDF.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/shopspring/decimal"
)

var Headers = []string{"Invoice Number", "Date", "Customer", "Subtotal", "Tax Rate", "Tax Amount", "Grand Total"}

// FormatAmount renders an amount as "<symbol><amount>" with two decimals.
func FormatAmount(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// FormatRate renders a tax rate as "<rate>%" without trailing zeros.
func FormatRate(rate decimal.Decimal) string {
	return rate.String() + "%"
}

// InvoiceRows flattens invoices into list export rows matching Headers.
func InvoiceRows(invoices []model.Invoice) [][]string {
	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{
			inv.InvoiceNumber,
			inv.InvoiceDate,
			inv.CustomerName,
			FormatAmount(inv.CurrencySymbol, inv.Subtotal),
			FormatRate(inv.TaxRate),
			FormatAmount(inv.CurrencySymbol, inv.TaxAmount),
			FormatAmount(inv.CurrencySymbol, inv.GrandTotal),
		})
	}
	return rows
}

// WriteCSV writes headers and rows with every field quoted.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	if headers != nil {
		if err := writeRecord(w, headers); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writeRecord(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}

// WriteInvoiceCSV writes one invoice: a label/value summary followed by the item
// table and the totals.
func WriteInvoiceCSV(w io.Writer, inv *model.Invoice) error {
	sym := inv.CurrencySymbol
	rows := [][]string{
		{"Invoice Number", inv.InvoiceNumber},
		{"Date", inv.InvoiceDate},
		{"Customer", inv.CustomerName},
		{},
		{"Product", "Price", "Quantity", "Total"},
	}
	for _, item := range inv.Items {
		rows = append(rows, []string{
			item.ProductName,
			FormatAmount(sym, item.Price),
			fmt.Sprint(item.Quantity),
			FormatAmount(sym, item.Total),
		})
	}
	rows = append(rows,
		[]string{},
		[]string{"Subtotal", FormatAmount(sym, inv.Subtotal)},
		[]string{"Tax Rate", FormatRate(inv.TaxRate)},
		[]string{"Tax Amount", FormatAmount(sym, inv.TaxAmount)},
		[]string{"Grand Total", FormatAmount(sym, inv.GrandTotal)},
	)
	return WriteCSV(w, nil, rows)
}

// Sheet is a spreadsheet-ready payload; clients turn it into a workbook.
type Sheet struct {
	Filename string     `json:"filename"`
	Sheet    string     `json:"sheet"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
}

func NewSheet(basename string, invoices []model.Invoice) Sheet {
	return Sheet{
		Filename: basename + ".xlsx",
		Sheet:    "Invoices",
		Headers:  Headers,
		Rows:     InvoiceRows(invoices),
	}
}
