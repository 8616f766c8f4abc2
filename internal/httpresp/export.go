package httpresp

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/fekuna/omnipos-invoice-service/internal/export"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/gin-gonic/gin"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// Invoices writes an invoice list export: an attached CSV file or the
// spreadsheet JSON payload.
func Invoices(c *gin.Context, format, basename string, invoices []model.Invoice) {
	switch strings.ToLower(format) {
	case "", FormatCSV:
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, export.Headers, export.InvoiceRows(invoices)); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Failed to export invoices", Details: []string{err.Error()}})
			return
		}
		Attachment(c, basename+".csv", "text/csv; charset=utf-8", buf.Bytes())
	case FormatExcel:
		c.JSON(http.StatusOK, export.NewSheet(basename, invoices))
	default:
		BadRequest(c, "Invalid format", "format must be csv or excel")
	}
}

func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
