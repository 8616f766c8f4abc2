package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fekuna/omnipos-invoice-service/internal/apperr"
	"github.com/fekuna/omnipos-invoice-service/internal/database/dbtest"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice/repository"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice/usecase"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	productrepo "github.com/fekuna/omnipos-invoice-service/internal/product/repository"
	"github.com/fekuna/omnipos-invoice-service/internal/setting"
	settingdto "github.com/fekuna/omnipos-invoice-service/internal/setting/dto"
	settingrepo "github.com/fekuna/omnipos-invoice-service/internal/setting/repository"
	settinguc "github.com/fekuna/omnipos-invoice-service/internal/setting/usecase"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db       *sqlx.DB
	uc       invoice.UseCase
	products *productrepo.SQLRepository
	settings setting.UseCase
}

func newFixture(t *testing.T, exportMaxRows int) *fixture {
	db := dbtest.New(t)
	log := logger.NewNop()
	settings := settinguc.NewSettingUseCase(settingrepo.NewSQLRepository(db), log)
	products := productrepo.NewSQLRepository(db)
	uc := usecase.NewInvoiceUseCase(repository.NewSQLRepository(db), products, settings, exportMaxRows, log)
	return &fixture{db: db, uc: uc, products: products, settings: settings}
}

func (f *fixture) product(t *testing.T, name, price string) int64 {
	p := &model.Product{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p.ID
}

func (f *fixture) invoice(t *testing.T, number, date, customer string, items ...dto.CreateItemInput) *model.Invoice {
	inv, err := f.uc.CreateInvoice(context.Background(), &dto.CreateInvoiceInput{
		CustomerName:  customer,
		InvoiceDate:   date,
		InvoiceNumber: number,
		Items:         items,
	})
	require.NoError(t, err)
	return inv
}

func (f *fixture) itemCount(t *testing.T, invoiceID int64) int {
	var n int
	require.NoError(t, f.db.Get(&n, f.db.Rebind(`SELECT count(*) FROM invoice_items WHERE invoice_id = ?`), invoiceID))
	return n
}

func TestNextInvoiceNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("starting number when nothing was issued", func(t *testing.T) {
		f := newFixture(t, 0)
		next, err := f.uc.NextInvoiceNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, "INV-1000", next.InvoiceNumber)
		assert.Equal(t, int64(1000), next.Number)
	})

	t.Run("follows the highest issued number", func(t *testing.T) {
		f := newFixture(t, 0)
		tea := f.product(t, "Tea", "1")
		f.invoice(t, "INV-1000", "2024-01-01", "A", dto.CreateItemInput{ProductID: tea, Quantity: 1})
		f.invoice(t, "INV-1005", "2024-01-02", "B", dto.CreateItemInput{ProductID: tea, Quantity: 1})

		next, err := f.uc.NextInvoiceNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, "INV-1006", next.InvoiceNumber)
	})

	t.Run("compares suffixes numerically", func(t *testing.T) {
		f := newFixture(t, 0)
		tea := f.product(t, "Tea", "1")
		f.invoice(t, "INV-9", "2024-01-01", "A", dto.CreateItemInput{ProductID: tea, Quantity: 1})
		f.invoice(t, "INV-10", "2024-01-02", "B", dto.CreateItemInput{ProductID: tea, Quantity: 1})
		f.invoice(t, "inv-5000", "2024-01-03", "C", dto.CreateItemInput{ProductID: tea, Quantity: 1})
		f.invoice(t, "BILL-7000", "2024-01-04", "D", dto.CreateItemInput{ProductID: tea, Quantity: 1})
		f.invoice(t, "INV-draft", "2024-01-05", "E", dto.CreateItemInput{ProductID: tea, Quantity: 1})

		next, err := f.uc.NextInvoiceNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, "INV-11", next.InvoiceNumber)
	})

	t.Run("uses the configured prefix", func(t *testing.T) {
		f := newFixture(t, 0)
		_, err := f.settings.UpdateSettings(ctx, &settingdto.UpdateSettingsInput{
			CurrencyCode:          "USD",
			CurrencySymbol:        "$",
			InvoicePrefix:         "A.B/",
			InvoiceStartingNumber: 1,
		})
		require.NoError(t, err)

		tea := f.product(t, "Tea", "1")
		f.invoice(t, "", "2024-01-01", "A", dto.CreateItemInput{ProductID: tea, Quantity: 1})
		f.invoice(t, "AxB/99", "2024-01-01", "A", dto.CreateItemInput{ProductID: tea, Quantity: 1})

		next, err := f.uc.NextInvoiceNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A.B/2", next.InvoiceNumber)
	})
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	widget := f.product(t, "Widget", "100")

	inv := f.invoice(t, "", "15/03/2024", "", dto.CreateItemInput{ProductID: widget, Quantity: 1})
	assert.Equal(t, "INV-1000", inv.InvoiceNumber)
	assert.Equal(t, model.DefaultCustomerName, inv.CustomerName)
	assert.Equal(t, "₹", inv.CurrencySymbol)
	require.NotNil(t, inv.InvoiceDateISO)
	assert.Equal(t, "2024-03-15", *inv.InvoiceDateISO)

	got, err := f.uc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "18", got.TaxRate.String())
	assert.Equal(t, "18.00", got.TaxAmount.StringFixed(2))
	assert.Equal(t, "118.00", got.GrandTotal.StringFixed(2))
}

func TestCreateInvoiceTaxDisabled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	_, err := f.settings.UpdateSettings(ctx, &settingdto.UpdateSettingsInput{
		CurrencyCode:   "USD",
		CurrencySymbol: "$",
		TaxRate:        decimal.NewFromInt(20),
		TaxEnabled:     false,
	})
	require.NoError(t, err)
	widget := f.product(t, "Widget", "19.99")

	inv := f.invoice(t, "", "2024-03-15", "Zed", dto.CreateItemInput{ProductID: widget, Quantity: 3})
	assert.True(t, inv.TaxRate.IsZero())
	assert.Equal(t, "59.97", inv.GrandTotal.StringFixed(2))
	assert.Equal(t, "$", inv.CurrencySymbol)
}

func TestInvoiceItemsLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	a := f.product(t, "A", "1.50")
	b := f.product(t, "B", "2")
	c := f.product(t, "C", "3")

	inv := f.invoice(t, "", "2024-05-01", "Shop",
		dto.CreateItemInput{ProductID: a, Quantity: 2},
		dto.CreateItemInput{ProductID: b, Quantity: 1},
		dto.CreateItemInput{ProductID: c, Quantity: 4},
	)
	assert.Equal(t, 3, f.itemCount(t, inv.ID))
	for _, item := range inv.Items {
		assert.Equal(t, inv.ID, item.InvoiceID)
		assert.NotZero(t, item.ID)
	}
	assert.Equal(t, "17.00", inv.Subtotal.StringFixed(2))

	require.NoError(t, f.uc.DeleteInvoice(ctx, inv.ID))
	assert.Equal(t, 0, f.itemCount(t, inv.ID))

	_, err := f.uc.GetInvoice(ctx, inv.ID)
	assert.True(t, apperr.IsNotFound(err))
	assert.True(t, apperr.IsNotFound(f.uc.DeleteInvoice(ctx, inv.ID)))
}

func TestProductRenameKeepsInvoiceSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	id := f.product(t, "Old Name", "10")
	inv := f.invoice(t, "", "2024-05-01", "Shop", dto.CreateItemInput{ProductID: id, Quantity: 2})

	p, err := f.products.FindByID(ctx, id)
	require.NoError(t, err)
	p.Name = "New Name"
	p.Price = decimal.NewFromInt(99)
	require.NoError(t, f.products.Update(ctx, p))

	got, err := f.uc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Old Name", got.Items[0].ProductName)
	assert.Equal(t, "10.00", got.Items[0].Price.StringFixed(2))
	assert.Equal(t, "20.00", got.Subtotal.StringFixed(2))
}

func TestCreateInvoiceForDeletedProduct(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	price := decimal.RequireFromString("4.25")

	inv, err := f.uc.CreateInvoice(ctx, &dto.CreateInvoiceInput{
		InvoiceDate: "2024-05-01",
		Items:       []dto.CreateItemInput{{ProductID: 77, ProductName: "Gone", Price: &price, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Gone", inv.Items[0].ProductName)
	assert.Equal(t, "8.50", inv.Subtotal.StringFixed(2))

	_, err = f.uc.CreateInvoice(ctx, &dto.CreateInvoiceInput{
		InvoiceDate: "2024-05-01",
		Items:       []dto.CreateItemInput{{ProductID: 78, Quantity: 1}},
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestCreateInvoiceValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	id := f.product(t, "Tea", "1")

	tests := []struct {
		name  string
		input dto.CreateInvoiceInput
	}{
		{"missing date", dto.CreateInvoiceInput{Items: []dto.CreateItemInput{{ProductID: id, Quantity: 1}}}},
		{"no items", dto.CreateInvoiceInput{InvoiceDate: "2024-01-01"}},
		{"zero quantity", dto.CreateInvoiceInput{InvoiceDate: "2024-01-01", Items: []dto.CreateItemInput{{ProductID: id}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.CreateInvoice(ctx, &tt.input)
			assert.True(t, apperr.IsValidation(err), "got %v", err)
		})
	}

	list, err := f.uc.ListInvoices(ctx, &dto.InvoiceFilters{})
	require.NoError(t, err)
	assert.Zero(t, list.Pagination.Total)
}

func TestListInvoicesPagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	tea := f.product(t, "Tea", "1")

	for i := 1; i <= 7; i++ {
		f.invoice(t, "", fmt.Sprintf("2024-01-%02d", i), "C", dto.CreateItemInput{ProductID: tea, Quantity: 1})
	}

	all, err := f.uc.ExportInvoices(ctx, &dto.InvoiceFilters{})
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "2024-01-07", all[0].InvoiceDate)

	const limit = 3
	var union []int64
	for p := 1; p <= 3; p++ {
		list, err := f.uc.ListInvoices(ctx, &dto.InvoiceFilters{Page: p, Limit: limit})
		require.NoError(t, err)
		assert.Equal(t, 7, list.Pagination.Total)
		assert.Equal(t, 3, list.Pagination.TotalPages)
		assert.Equal(t, p, list.Pagination.CurrentPage)
		assert.Len(t, list.Invoices, min(limit, 7-(p-1)*limit))
		for _, inv := range list.Invoices {
			assert.Empty(t, inv.Items)
			union = append(union, inv.ID)
		}
	}

	var want []int64
	for _, inv := range all {
		want = append(want, inv.ID)
	}
	assert.Equal(t, want, union)
}

func TestListInvoicesFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	tea := f.product(t, "Green Tea", "2")
	cake := f.product(t, "Cake", "5")

	f.invoice(t, "INV-1", "05/01/2024", "Alice Smith", dto.CreateItemInput{ProductID: tea, Quantity: 1})
	f.invoice(t, "INV-2", "2024-02-10", "Bob", dto.CreateItemInput{ProductID: cake, Quantity: 1})
	f.invoice(t, "INV-3", "20-03-2024", "alice cooper", dto.CreateItemInput{ProductID: cake, Quantity: 1}, dto.CreateItemInput{ProductID: tea, Quantity: 2})
	f.invoice(t, "INV-4", "sometime", "Carol", dto.CreateItemInput{ProductID: tea, Quantity: 1})

	numbers := func(filters dto.InvoiceFilters) []string {
		list, err := f.uc.ListInvoices(ctx, &filters)
		require.NoError(t, err)
		out := []string{}
		for _, inv := range list.Invoices {
			out = append(out, inv.InvoiceNumber)
		}
		return out
	}

	assert.Equal(t, []string{"INV-3", "INV-1"}, numbers(dto.InvoiceFilters{Search: "ALICE"}))
	assert.Equal(t, []string{"INV-2"}, numbers(dto.InvoiceFilters{Search: "inv-2"}))
	assert.Equal(t, []string{"INV-2"}, numbers(dto.InvoiceFilters{Customer: "bob"}))
	assert.Equal(t, []string{"INV-3", "INV-1", "INV-4"}, numbers(dto.InvoiceFilters{Product: "tea"}))
	assert.Equal(t, []string{"INV-3"}, numbers(dto.InvoiceFilters{Product: "tea", Customer: "cooper"}))

	// Bounds in any accepted format compare against the normalised date.
	assert.Equal(t, []string{"INV-3", "INV-2"}, numbers(dto.InvoiceFilters{StartDate: "01/02/2024", EndDate: "2024-03-20"}))
	assert.Equal(t, []string{"INV-1"}, numbers(dto.InvoiceFilters{EndDate: "2024-01-05"}))

	_, err := f.uc.ListInvoices(ctx, &dto.InvoiceFilters{StartDate: "not a date"})
	assert.True(t, apperr.IsValidation(err))

	// LIKE wildcards in the filter are literal.
	assert.Empty(t, numbers(dto.InvoiceFilters{Search: "%"}))
}

func TestExportInvoicesIsCapped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 2)
	tea := f.product(t, "Tea", "1")
	for i := 0; i < 3; i++ {
		f.invoice(t, "", "2024-01-01", "C", dto.CreateItemInput{ProductID: tea, Quantity: 1})
	}

	rows, err := f.uc.ExportInvoices(ctx, &dto.InvoiceFilters{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestApplyTotals(t *testing.T) {
	inv := &model.Invoice{
		TaxRate: decimal.RequireFromString("7.5"),
		Items: []model.InvoiceItem{
			{Price: decimal.RequireFromString("9.99"), Quantity: 3},
			{Price: decimal.RequireFromString("0.10"), Quantity: 1},
		},
	}
	usecase.ApplyTotals(inv)
	assert.Equal(t, "29.97", inv.Items[0].Total.StringFixed(2))
	assert.Equal(t, "30.07", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "2.26", inv.TaxAmount.StringFixed(2))
	assert.Equal(t, "32.33", inv.GrandTotal.StringFixed(2))
}
