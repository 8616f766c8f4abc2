package report

import (
	"context"

	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/report/dto"
)

type Repository interface {
	// AllInvoices returns every invoice without items.
	AllInvoices(ctx context.Context) ([]model.Invoice, error)
	MostOrdered(ctx context.Context, search string, limit, offset int) ([]dto.ProductRanking, int, error)
}
