package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-invoice-service/internal/apperr"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/period"
	"github.com/fekuna/omnipos-invoice-service/internal/report"
	"github.com/fekuna/omnipos-invoice-service/internal/report/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type reportUseCase struct {
	repo   report.Repository
	logger logger.ZapLogger
}

func NewReportUseCase(repo report.Repository, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:   repo,
		logger: log,
	}
}

type bucket struct {
	summary dto.PeriodSummary
	sortKey string
}

// History buckets every invoice by granularity, most recent bucket first. Dates no
// parser understands land in "unknown", which sorts last.
func (uc *reportUseCase) History(ctx context.Context, granularity string) ([]dto.PeriodSummary, error) {
	g, err := parseGranularity(granularity)
	if err != nil {
		return nil, err
	}

	invoices, err := uc.repo.AllInvoices(ctx)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*bucket{}
	for _, inv := range invoices {
		key := period.Key(g, inv.InvoiceDate)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				summary: dto.PeriodSummary{Period: key, TotalRevenue: decimal.Zero},
				sortKey: period.SortKey(g, inv.InvoiceDate),
			}
			buckets[key] = b
		}
		b.summary.Count++
		b.summary.TotalRevenue = b.summary.TotalRevenue.Add(inv.GrandTotal)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].sortKey != ordered[j].sortKey {
			return ordered[i].sortKey > ordered[j].sortKey
		}
		return ordered[i].summary.Period > ordered[j].summary.Period
	})

	out := make([]dto.PeriodSummary, len(ordered))
	for i, b := range ordered {
		out[i] = b.summary
	}

	uc.logger.Debug("invoice history computed", zap.String("granularity", string(g)), zap.Int("buckets", len(out)))
	return out, nil
}

func (uc *reportUseCase) InvoicesForPeriod(ctx context.Context, granularity, value string) ([]model.Invoice, error) {
	g, err := parseGranularity(granularity)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(value) == "" {
		return nil, apperr.Validation("Period value is required")
	}

	invoices, err := uc.repo.AllInvoices(ctx)
	if err != nil {
		return nil, err
	}

	type keyed struct {
		inv     model.Invoice
		sortKey string
	}
	matched := []keyed{}
	for _, inv := range invoices {
		if period.Key(g, inv.InvoiceDate) == value {
			matched = append(matched, keyed{inv: inv, sortKey: period.ISO(inv.InvoiceDate)})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].sortKey != matched[j].sortKey {
			return matched[i].sortKey > matched[j].sortKey
		}
		return matched[i].inv.ID > matched[j].inv.ID
	})

	out := make([]model.Invoice, len(matched))
	for i, m := range matched {
		out[i] = m.inv
	}
	return out, nil
}

func (uc *reportUseCase) MostOrderedProducts(ctx context.Context, filters *dto.RankingFilters) (*dto.RankingPage, error) {
	page, limit := model.NormalizePage(filters.Page, filters.Limit)

	rankings, total, err := uc.repo.MostOrdered(ctx, strings.TrimSpace(filters.Search), limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &dto.RankingPage{
		Products:   rankings,
		Pagination: model.NewPagination(total, page, limit),
	}, nil
}

func parseGranularity(raw string) (period.Granularity, error) {
	g, err := period.ParseGranularity(raw)
	if err != nil {
		return "", apperr.Validation(err.Error())
	}
	return g, nil
}
