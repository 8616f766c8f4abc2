package report

import (
	"context"

	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/report/dto"
)

type UseCase interface {
	History(ctx context.Context, granularity string) ([]dto.PeriodSummary, error)
	InvoicesForPeriod(ctx context.Context, granularity, value string) ([]model.Invoice, error)
	MostOrderedProducts(ctx context.Context, filters *dto.RankingFilters) (*dto.RankingPage, error)
}
