package invoice

import (
	"context"

	"github.com/fekuna/omnipos-invoice-service/internal/invoice/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
)

type Repository interface {
	// ListNumbersWithPrefix returns invoice numbers starting with prefix, longest first.
	ListNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error)
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, id int64) (*model.Invoice, error)
	FindAll(ctx context.Context, filters *dto.InvoiceFilters) ([]model.Invoice, int, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
