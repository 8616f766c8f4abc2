package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-invoice-service/internal/httpresp"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/report"
	"github.com/fekuna/omnipos-invoice-service/internal/report/dto"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: log,
	}
}

// RegisterRoutes mounts the reporting endpoints under /invoices.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/invoices")
	g.GET("/history/:period", h.History)
	g.GET("/history/:period/:value", h.InvoicesForPeriod)
	g.GET("/stats/most-ordered", h.MostOrderedProducts)
}

func (h *ReportHandler) History(c *gin.Context) {
	summaries, err := h.uc.History(c.Request.Context(), c.Param("period"))
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to fetch invoice history")
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// InvoicesForPeriod lists a bucket's invoices, or exports them when format is set.
func (h *ReportHandler) InvoicesForPeriod(c *gin.Context) {
	granularity, value := c.Param("period"), c.Param("value")

	invoices, err := h.uc.InvoicesForPeriod(c.Request.Context(), granularity, value)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to fetch invoices for period")
		return
	}

	if format := c.Query("format"); format != "" {
		httpresp.Invoices(c, format, "invoices-"+granularity+"-"+value, invoices)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *ReportHandler) MostOrderedProducts(c *gin.Context) {
	page, err := h.uc.MostOrderedProducts(c.Request.Context(), &dto.RankingFilters{
		Search: c.Query("search"),
		Page:   httpresp.QueryInt(c, "page", 1),
		Limit:  httpresp.QueryInt(c, "limit", 0),
	})
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to fetch most ordered products")
		return
	}
	c.JSON(http.StatusOK, page)
}
