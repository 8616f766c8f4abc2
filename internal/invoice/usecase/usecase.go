package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-invoice-service/internal/apperr"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/numbering"
	"github.com/fekuna/omnipos-invoice-service/internal/period"
	"github.com/fekuna/omnipos-invoice-service/internal/product"
	"github.com/fekuna/omnipos-invoice-service/internal/setting"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultExportMaxRows = 1000

var hundred = decimal.NewFromInt(100)

type invoiceUseCase struct {
	repo          invoice.Repository
	products      product.Repository
	settings      setting.UseCase
	exportMaxRows int
	logger        logger.ZapLogger
}

func NewInvoiceUseCase(repo invoice.Repository, products product.Repository, settings setting.UseCase, exportMaxRows int, log logger.ZapLogger) invoice.UseCase {
	if exportMaxRows <= 0 {
		exportMaxRows = DefaultExportMaxRows
	}
	return &invoiceUseCase{
		repo:          repo,
		products:      products,
		settings:      settings,
		exportMaxRows: exportMaxRows,
		logger:        log,
	}
}

// NextInvoiceNumber follows the highest numeric suffix issued under the configured
// prefix. Numbers whose suffix cannot be read are ignored.
func (uc *invoiceUseCase) NextInvoiceNumber(ctx context.Context) (*numbering.Next, error) {
	s, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	prefix := s.InvoicePrefix
	if prefix == "" {
		prefix = model.DefaultInvoicePrefix
	}
	start := s.InvoiceStartingNumber
	if start <= 0 {
		start = model.DefaultStartingNumber
	}

	existing, err := uc.repo.ListNumbersWithPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	next := numbering.Compute(prefix, start, existing)
	return &next, nil
}

func (uc *invoiceUseCase) CreateInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	s, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	items, err := uc.snapshotItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	inv := &model.Invoice{
		CustomerName:   strings.TrimSpace(input.CustomerName),
		InvoiceDate:    strings.TrimSpace(input.InvoiceDate),
		InvoiceNumber:  strings.TrimSpace(input.InvoiceNumber),
		CurrencySymbol: s.CurrencySymbol,
		Items:          items,
	}
	if inv.CustomerName == "" {
		inv.CustomerName = model.DefaultCustomerName
	}
	if iso := period.ISO(inv.InvoiceDate); iso != "" {
		inv.InvoiceDateISO = &iso
	}

	if inv.InvoiceNumber == "" {
		next, err := uc.NextInvoiceNumber(ctx)
		if err != nil {
			return nil, err
		}
		inv.InvoiceNumber = next.InvoiceNumber
	}

	switch {
	case input.TaxRate != nil:
		inv.TaxRate = *input.TaxRate
	case s.TaxEnabled:
		inv.TaxRate = s.TaxRate
	default:
		inv.TaxRate = decimal.Zero
	}
	ApplyTotals(inv)

	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.logger.Info("invoice created",
		zap.Int64("invoice_id", inv.ID),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Int("items", len(inv.Items)),
		zap.String("grand_total", inv.GrandTotal.StringFixed(2)),
	)
	return inv, nil
}

// ApplyTotals sets subtotal, tax and grand total from the items and tax rate. Tax is
// rounded to two places.
func ApplyTotals(inv *model.Invoice) {
	subtotal := decimal.Zero
	for i := range inv.Items {
		item := &inv.Items[i]
		item.Total = item.Price.Mul(decimal.NewFromInt(item.Quantity)).Round(2)
		subtotal = subtotal.Add(item.Total)
	}
	inv.Subtotal = subtotal
	inv.TaxAmount = subtotal.Mul(inv.TaxRate).Div(hundred).Round(2)
	inv.GrandTotal = subtotal.Add(inv.TaxAmount)
}

// snapshotItems copies the current catalog name and price onto each item so later
// catalog edits never change the invoice.
func (uc *invoiceUseCase) snapshotItems(ctx context.Context, inputs []dto.CreateItemInput) ([]model.InvoiceItem, error) {
	items := make([]model.InvoiceItem, 0, len(inputs))
	var details []string

	for i, in := range inputs {
		p, err := uc.products.FindByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}

		item := model.InvoiceItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		}
		if p != nil {
			item.ProductName = p.Name
			item.Price = p.Price
		} else {
			name := strings.TrimSpace(in.ProductName)
			if name == "" || in.Price == nil {
				details = append(details, fmt.Sprintf("Item %d: product %d not found and no name/price given", i+1, in.ProductID))
				continue
			}
			item.ProductName = name
			item.Price = in.Price.Round(2)
		}
		items = append(items, item)
	}

	if len(details) > 0 {
		return nil, apperr.Validation(details...)
	}
	return items, nil
}

func (uc *invoiceUseCase) GetInvoice(ctx context.Context, id int64) (*model.Invoice, error) {
	inv, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, apperr.NotFound("Invoice")
	}
	return inv, nil
}

func (uc *invoiceUseCase) ListInvoices(ctx context.Context, filters *dto.InvoiceFilters) (*dto.InvoiceList, error) {
	f, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	f.Page, f.Limit = model.NormalizePage(f.Page, f.Limit)

	invoices, total, err := uc.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceList{
		Invoices:   invoices,
		Pagination: model.NewPagination(total, f.Page, f.Limit),
	}, nil
}

// ExportInvoices returns the whole filtered set, capped at the configured maximum.
func (uc *invoiceUseCase) ExportInvoices(ctx context.Context, filters *dto.InvoiceFilters) ([]model.Invoice, error) {
	f, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	f.Page, f.Limit = 1, uc.exportMaxRows

	invoices, total, err := uc.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	if total > len(invoices) {
		uc.logger.Warn("invoice export truncated", zap.Int("total", total), zap.Int("exported", len(invoices)))
	}
	return invoices, nil
}

func (uc *invoiceUseCase) DeleteInvoice(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Invoice")
	}
	uc.logger.Info("invoice deleted", zap.Int64("invoice_id", id))
	return nil
}

func validateCreate(input *dto.CreateInvoiceInput) error {
	var details []string
	if strings.TrimSpace(input.InvoiceDate) == "" {
		details = append(details, "Invoice date is required")
	}
	if len(input.Items) == 0 {
		details = append(details, "At least one item is required")
	}
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			details = append(details, fmt.Sprintf("Item %d: quantity must be greater than zero", i+1))
		}
		if item.Price != nil && item.Price.IsNegative() {
			details = append(details, fmt.Sprintf("Item %d: price cannot be negative", i+1))
		}
	}
	if input.TaxRate != nil && input.TaxRate.IsNegative() {
		details = append(details, "Tax rate cannot be negative")
	}
	if len(details) > 0 {
		return apperr.Validation(details...)
	}
	return nil
}

// normalizeFilters trims the text filters and rewrites date bounds to YYYY-MM-DD.
func normalizeFilters(in *dto.InvoiceFilters) (*dto.InvoiceFilters, error) {
	f := *in
	f.Search = strings.TrimSpace(f.Search)
	f.Customer = strings.TrimSpace(f.Customer)
	f.Product = strings.TrimSpace(f.Product)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)

	var details []string
	if raw := f.StartDate; raw != "" {
		if f.StartDate = period.ISO(raw); f.StartDate == "" {
			details = append(details, "Invalid startDate: "+raw)
		}
	}
	if raw := f.EndDate; raw != "" {
		if f.EndDate = period.ISO(raw); f.EndDate == "" {
			details = append(details, "Invalid endDate: "+raw)
		}
	}
	if len(details) > 0 {
		return nil, apperr.Validation(details...)
	}
	return &f, nil
}
