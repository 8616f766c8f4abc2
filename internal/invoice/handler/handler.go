package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-invoice-service/internal/export"
	"github.com/fekuna/omnipos-invoice-service/internal/httpresp"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/setting"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	uc       invoice.UseCase
	settings setting.UseCase
	logger   logger.ZapLogger
}

func NewInvoiceHandler(uc invoice.UseCase, settings setting.UseCase, log logger.ZapLogger) *InvoiceHandler {
	return &InvoiceHandler{
		uc:       uc,
		settings: settings,
		logger:   log,
	}
}

func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/invoices")
	g.GET("", h.ListInvoices)
	g.POST("", h.CreateInvoice)
	g.GET("/next-number", h.NextInvoiceNumber)
	g.GET("/export", h.ExportInvoices)
	g.GET("/:id", h.GetInvoice)
	g.DELETE("/:id", h.DeleteInvoice)
	g.GET("/:id/csv", h.InvoiceCSV)
	g.GET("/:id/pdf", h.InvoicePDF)
}

func (h *InvoiceHandler) NextInvoiceNumber(c *gin.Context) {
	next, err := h.uc.NextInvoiceNumber(c.Request.Context())
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to generate invoice number")
		return
	}
	c.JSON(http.StatusOK, next)
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var input dto.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpresp.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	inv, err := h.uc.CreateInvoice(c.Request.Context(), &input)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	list, err := h.uc.ListInvoices(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to fetch invoices")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *InvoiceHandler) ExportInvoices(c *gin.Context) {
	invoices, err := h.uc.ExportInvoices(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to export invoices")
		return
	}
	httpresp.Invoices(c, c.Query("format"), "invoices-"+time.Now().Format("2006-01-02"), invoices)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := httpresp.ParamID(c, "id")
	if !ok {
		return
	}

	inv, err := h.uc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to fetch invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := httpresp.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteInvoice(c.Request.Context(), id); err != nil {
		httpresp.Error(c, h.logger, err, "Failed to delete invoice")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

func (h *InvoiceHandler) InvoiceCSV(c *gin.Context) {
	id, ok := httpresp.ParamID(c, "id")
	if !ok {
		return
	}

	inv, err := h.uc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to export invoice")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteInvoiceCSV(&buf, inv); err != nil {
		httpresp.Error(c, h.logger, err, "Failed to export invoice")
		return
	}
	httpresp.Attachment(c, inv.InvoiceNumber+".csv", "text/csv; charset=utf-8", buf.Bytes())
}

func (h *InvoiceHandler) InvoicePDF(c *gin.Context) {
	id, ok := httpresp.ParamID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	inv, err := h.uc.GetInvoice(ctx, id)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to render invoice")
		return
	}
	s, err := h.settings.GetSettings(ctx)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to render invoice")
		return
	}

	var buf bytes.Buffer
	if err := export.RenderPDF(&buf, inv, s); err != nil {
		httpresp.Error(c, h.logger, err, "Failed to render invoice")
		return
	}
	httpresp.Attachment(c, inv.InvoiceNumber+".pdf", "application/pdf", buf.Bytes())
}

func filtersFromQuery(c *gin.Context) *dto.InvoiceFilters {
	return &dto.InvoiceFilters{
		Search:    c.Query("search"),
		Customer:  c.Query("customer"),
		Product:   c.Query("product"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      httpresp.QueryInt(c, "page", 1),
		Limit:     httpresp.QueryInt(c, "limit", 0),
	}
}
