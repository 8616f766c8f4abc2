package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-invoice-service/internal/database/dbtest"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/report/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/report/handler"
	"github.com/fekuna/omnipos-invoice-service/internal/report/repository"
	"github.com/fekuna/omnipos-invoice-service/internal/report/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	invoices []model.Invoice
}

func (s *stubRepo) AllInvoices(ctx context.Context) ([]model.Invoice, error) {
	return s.invoices, nil
}

func (s *stubRepo) MostOrdered(ctx context.Context, search string, limit, offset int) ([]dto.ProductRanking, int, error) {
	return []dto.ProductRanking{}, 0, nil
}

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	r := gin.New()

	repo := &stubRepo{invoices: []model.Invoice{
		{ID: 1, InvoiceNumber: "INV-1", InvoiceDate: "2024-03-01", CustomerName: "A", TaxRate: decimal.NewFromInt(18),
			Subtotal: decimal.NewFromInt(100), TaxAmount: decimal.NewFromInt(18), GrandTotal: decimal.NewFromInt(118), CurrencySymbol: "₹"},
		{ID: 2, InvoiceNumber: "INV-2", InvoiceDate: "2023-03-01", CustomerName: "B", TaxRate: decimal.Zero,
			Subtotal: decimal.NewFromInt(5), TaxAmount: decimal.Zero, GrandTotal: decimal.NewFromInt(5), CurrencySymbol: "₹"},
	}}
	handler.NewReportHandler(usecase.NewReportUseCase(repo, log), log).RegisterRoutes(r.Group("/api"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHistoryEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/api/invoices/history/year")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
        {"period":"2024","count":1,"total_revenue":118},
        {"period":"2023","count":1,"total_revenue":5}
    ]`, w.Body.String())

	w = get(r, "/api/invoices/history/month/2024-03")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"invoice_number":"INV-1"`)
	assert.NotContains(t, w.Body.String(), `"INV-2"`)

	w = get(r, "/api/invoices/history/month/2024-03?format=csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Tax Rate","Tax Amount"`)
	assert.Contains(t, w.Body.String(), `"INV-1","2024-03-01","A","₹100.00","18%"`)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoices-month-2024-03.csv")

	w = get(r, "/api/invoices/history/century")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMostOrderedEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := dbtest.New(t)
	log := logger.NewNop()
	r := gin.New()
	handler.NewReportHandler(usecase.NewReportUseCase(repository.NewSQLRepository(db), log), log).RegisterRoutes(r.Group("/api"))

	w := get(r, "/api/invoices/stats/most-ordered?page=0&limit=500")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"products":[],"pagination":{"total":0,"totalPages":0,"currentPage":1,"limit":100}}`, w.Body.String())
}
