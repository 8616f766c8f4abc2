package export

import (
	"fmt"
	"io"

	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// RenderPDF writes a one-invoice A4 document. Core PDF fonts cannot draw most
// currency symbols, so amounts carry the currency code instead.
func RenderPDF(w io.Writer, inv *model.Invoice, s *model.Setting) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	money := func(d decimal.Decimal) string {
		return s.CurrencyCode + " " + d.StringFixed(2)
	}

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	title := "Invoice"
	if s.CompanyName != "" {
		title = s.CompanyName
	}
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{s.CompanyAddress, s.CompanyPhone, s.CompanyEmail} {
		if line != "" {
			pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, tr("Invoice Number: "+inv.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Date: "+inv.InvoiceDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Bill To: "+inv.CustomerName), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	widths := []float64{90, 35, 25, 40}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Product", "Price", "Qty", "Total"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(widths[0], 7, tr(item.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, money(item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprint(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, money(item.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	labelWidth := widths[0] + widths[1] + widths[2]
	taxLabel := "Tax"
	if s.TaxName != "" {
		taxLabel = s.TaxName
	}
	totals := [][2]string{
		{"Subtotal", money(inv.Subtotal)},
		{fmt.Sprintf("%s (%s)", taxLabel, FormatRate(inv.TaxRate)), money(inv.TaxAmount)},
		{"Grand Total", money(inv.GrandTotal)},
	}
	for i, t := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Arial", "B", 11)
		}
		pdf.CellFormat(labelWidth, 7, tr(t[0]), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, t[1], "", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}
