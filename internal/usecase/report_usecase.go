package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"rutvans_api/internal/domain/entities"
	"rutvans_api/internal/domain/reports"
	"rutvans_api/internal/usecase/interfaces"
)

var (
	ErrExpensesNotAvailable = errors.New("expenses are not available yet")
	ErrSalesFetch           = errors.New("failed fetching sales")
)

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/mock_report_usecase.go -package=mocks

// IReportUseCase exposes the finance reports.
//
// Every report validates its parameters before touching the store, then reads
// one snapshot and folds it in memory:
//   - Summary          => GET /resumen
//   - DailyDetail      => GET /ventas-detalle
//   - PeriodTotals     => GET /ventas-periodo
//   - TopRoutes        => GET /top-rutas
//   - HistoricalBalance => GET /balance-historico
//   - ExpenseCategories => GET /egresos-categorias (always ErrExpensesNotAvailable)
//   - FinanceWorkbook  => GET /export
type IReportUseCase interface {
	Summary(ctx context.Context) (reports.Summary, error)
	DailyDetail(ctx context.Context, date string) ([]reports.DetailLine, error)
	PeriodTotals(ctx context.Context, from, to string) (reports.PeriodTotals, error)
	TopRoutes(ctx context.Context, from, to string) ([]reports.RouteShare, error)
	HistoricalBalance(ctx context.Context, from, to, period string) ([]reports.BalancePoint, error)
	ExpenseCategories(ctx context.Context) error
	FinanceWorkbook(ctx context.Context, from, to, period string) (FinanceWorkbook, error)
}

// FinanceWorkbook bundles the range reports computed from one snapshot.
type FinanceWorkbook struct {
	From    string
	To      string
	Period  reports.Period
	Totals  reports.PeriodTotals
	Routes  []reports.RouteShare
	Balance []reports.BalancePoint
}

type ReportUseCase struct {
	repo     interfaces.ISaleRepository
	cache    interfaces.IReportCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase builds the report use case. A nil cache or a non-positive
// TTL disables caching.
func NewReportUseCase(repo interfaces.ISaleRepository, cache interfaces.IReportCache, cacheTTL time.Duration, logger *zap.Logger) *ReportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportUseCase{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (u *ReportUseCase) Summary(ctx context.Context) (reports.Summary, error) {
	return cached(ctx, u, "resumen", func() (reports.Summary, error) {
		sales, err := u.snapshot(ctx, "resumen", reports.Unbounded())
		if err != nil {
			return reports.Summary{}, err
		}
		return reports.Summarize(sales), nil
	})
}

func (u *ReportUseCase) DailyDetail(ctx context.Context, date string) ([]reports.DetailLine, error) {
	w, err := reports.DayWindow(date)
	if err != nil {
		return nil, err
	}
	return cached(ctx, u, cacheKey("ventas-detalle", date), func() ([]reports.DetailLine, error) {
		sales, err := u.snapshot(ctx, "ventas-detalle", w)
		if err != nil {
			return nil, err
		}
		return reports.Detail(sales), nil
	})
}

func (u *ReportUseCase) PeriodTotals(ctx context.Context, from, to string) (reports.PeriodTotals, error) {
	w, err := reports.RangeWindow(from, to)
	if err != nil {
		return reports.PeriodTotals{}, err
	}
	return cached(ctx, u, cacheKey("ventas-periodo", from, to), func() (reports.PeriodTotals, error) {
		sales, err := u.snapshot(ctx, "ventas-periodo", w)
		if err != nil {
			return reports.PeriodTotals{}, err
		}
		return reports.Totals(sales), nil
	})
}

func (u *ReportUseCase) TopRoutes(ctx context.Context, from, to string) ([]reports.RouteShare, error) {
	w, err := reports.RangeWindow(from, to)
	if err != nil {
		return nil, err
	}
	return cached(ctx, u, cacheKey("top-rutas", from, to), func() ([]reports.RouteShare, error) {
		sales, err := u.snapshot(ctx, "top-rutas", w)
		if err != nil {
			return nil, err
		}
		return reports.RankRoutes(sales), nil
	})
}

func (u *ReportUseCase) HistoricalBalance(ctx context.Context, from, to, period string) ([]reports.BalancePoint, error) {
	w, p, err := rangeAndPeriod(from, to, period)
	if err != nil {
		return nil, err
	}
	return cached(ctx, u, cacheKey("balance-historico", from, to, string(p)), func() ([]reports.BalancePoint, error) {
		sales, err := u.snapshot(ctx, "balance-historico", w)
		if err != nil {
			return nil, err
		}
		return reports.Balance(sales, p), nil
	})
}

func (u *ReportUseCase) ExpenseCategories(_ context.Context) error {
	return ErrExpensesNotAvailable
}

// FinanceWorkbook is never cached; exports always read a fresh snapshot.
func (u *ReportUseCase) FinanceWorkbook(ctx context.Context, from, to, period string) (FinanceWorkbook, error) {
	w, p, err := rangeAndPeriod(from, to, period)
	if err != nil {
		return FinanceWorkbook{}, err
	}
	sales, err := u.snapshot(ctx, "export", w)
	if err != nil {
		return FinanceWorkbook{}, err
	}
	return FinanceWorkbook{
		From:    strings.TrimSpace(from),
		To:      strings.TrimSpace(to),
		Period:  p,
		Totals:  reports.Totals(sales),
		Routes:  reports.RankRoutes(sales),
		Balance: reports.Balance(sales, p),
	}, nil
}

func rangeAndPeriod(from, to, period string) (reports.Window, reports.Period, error) {
	w, err := reports.RangeWindow(from, to)
	if err != nil {
		return reports.Window{}, "", err
	}
	p, err := reports.ParsePeriod(period)
	if err != nil {
		return reports.Window{}, "", err
	}
	return w, p, nil
}

// snapshot reads the sales for one report. The store is asked once; the
// window is applied again in memory so the fold never sees foreign rows.
func (u *ReportUseCase) snapshot(ctx context.Context, report string, w reports.Window) ([]entities.Sale, error) {
	var (
		sales []entities.Sale
		err   error
	)
	if w.Bounded {
		sales, err = u.repo.FindInRange(ctx, w.Start, w.End)
	} else {
		sales, err = u.repo.FindAll(ctx)
	}
	if err != nil {
		u.logger.Error("[finanzas][usecase] fetch failed", zap.String("report", report), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSalesFetch, err)
	}
	sales = w.Filter(sales)
	u.logger.Debug("[finanzas][usecase] snapshot loaded", zap.String("report", report), zap.Int("sales", len(sales)))
	return sales, nil
}

func cached[T any](ctx context.Context, u *ReportUseCase, key string, compute func() (T, error)) (T, error) {
	if u.cache == nil || u.cacheTTL <= 0 {
		return compute()
	}

	var hit T
	found, err := u.cache.Get(ctx, key, &hit)
	if err != nil {
		u.logger.Warn("[finanzas][usecase] cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return hit, nil
	}

	value, err := compute()
	if err != nil {
		return value, err
	}
	if err := u.cache.Set(ctx, key, value, u.cacheTTL); err != nil {
		u.logger.Warn("[finanzas][usecase] cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

func cacheKey(report string, params ...string) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, report)
	for _, p := range params {
		parts = append(parts, strings.TrimSpace(p))
	}
	return strings.Join(parts, ":")
}
