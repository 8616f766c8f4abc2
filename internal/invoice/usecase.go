package invoice

import (
	"context"

	"github.com/fekuna/omnipos-invoice-service/internal/invoice/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/numbering"
)

type UseCase interface {
	NextInvoiceNumber(ctx context.Context) (*numbering.Next, error)
	CreateInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*model.Invoice, error)
	ListInvoices(ctx context.Context, filters *dto.InvoiceFilters) (*dto.InvoiceList, error)
	ExportInvoices(ctx context.Context, filters *dto.InvoiceFilters) ([]model.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}
