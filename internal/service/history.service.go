package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"wealthsim/internal/db/models/postgres/public/model"
	"wealthsim/internal/domain"
	"wealthsim/internal/logger"
	"wealthsim/internal/repository"
	"wealthsim/internal/util"

	"github.com/montanaflynn/stats"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// HistoryService assembles the monthly series the engine consumes. Quotes
// are served from the local quote cache; a symbol with no rows (or a stale
// tail) is synced from the upstream chart feed first. Daily bars are
// resampled to one month-end observation per calendar month.
type HistoryService interface {
	GetSeries(ctx context.Context, tx *sql.Tx, symbol string, start, end time.Time) (*domain.HistoricalSeries, error)
	Sync(ctx context.Context, tx *sql.Tx, symbol string, start time.Time) error
}

type historyServiceHandler struct {
	QuoteRepository    repository.QuoteRepository
	DividendRepository repository.DividendRepository
}

func NewHistoryService(
	quoteRepository repository.QuoteRepository,
	dividendRepository repository.DividendRepository,
) HistoryService {
	return historyServiceHandler{
		QuoteRepository:    quoteRepository,
		DividendRepository: dividendRepository,
	}
}

// staleAfter is how far the newest stored quote may lag before a Load
// triggers a sync.
const staleAfter = 7 * 24 * time.Hour

func (h historyServiceHandler) GetSeries(ctx context.Context, tx *sql.Tx, symbol string, start, end time.Time) (*domain.HistoricalSeries, error) {
	latest, err := h.QuoteRepository.LatestDate(tx, symbol)
	if err != nil {
		return nil, err
	}
	if latest == nil || end.Sub(*latest) > staleAfter {
		if err := h.Sync(ctx, tx, symbol, start); err != nil {
			return nil, err
		}
	}

	daily, err := h.QuoteRepository.List(tx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	domain.GetProfile(ctx).Add("loaded daily quotes")

	monthly := resampleMonthly(daily)

	dividends, err := h.DividendRepository.List(tx, symbol, start, end)
	if err != nil {
		return nil, err
	}

	series := &domain.HistoricalSeries{
		Name:      symbol,
		History:   monthly,
		Dividends: dividends,
		Stats:     monthlyStats(monthly),
	}

	return series, nil
}

func (h historyServiceHandler) Sync(ctx context.Context, tx *sql.Tx, symbol string, start time.Time) error {
	log := logger.FromContext(ctx)

	// resume from the day after the newest stored quote
	latest, err := h.QuoteRepository.LatestDate(tx, symbol)
	if err != nil {
		return err
	}
	if latest != nil && latest.After(start) {
		start = latest.AddDate(0, 0, 1)
	}

	now := time.Now().UTC()
	if !start.Before(now) {
		return nil
	}

	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.QuoteHistory{}
	for iter.Next() {
		bar := iter.Bar()
		adjClose := bar.AdjClose.InexactFloat64()
		models = append(models, model.QuoteHistory{
			Symbol:   symbol,
			Date:     time.Unix(int64(bar.Timestamp), 0).UTC(),
			Open:     bar.Open.InexactFloat64(),
			High:     bar.High.InexactFloat64(),
			Low:      bar.Low.InexactFloat64(),
			Close:    bar.Close.InexactFloat64(),
			AdjClose: &adjClose,
			Volume:   int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get quotes for %s: %w", symbol, err)
	}

	log.Infof("synced %d quotes for %s", len(models), symbol)

	return h.QuoteRepository.Add(tx, models)
}

// resampleMonthly keeps the last observation of each calendar month.
// Input is assumed date-ascending, which the repository guarantees.
func resampleMonthly(daily []domain.PricePoint) []domain.PricePoint {
	out := []domain.PricePoint{}
	for i, point := range daily {
		if i+1 < len(daily) && util.MonthKey(daily[i+1].Date) == util.MonthKey(point.Date) {
			continue
		}
		out = append(out, point)
	}
	return out
}

// monthlyStats computes the mean and sample stddev of month-over-month
// returns. Fewer than three observations is too thin to describe and
// returns nil, which callers treat as "use model fallbacks".
func monthlyStats(monthly []domain.PricePoint) *domain.SeriesStats {
	if len(monthly) < 3 {
		return nil
	}

	returns := make([]float64, 0, len(monthly)-1)
	for i := 1; i < len(monthly); i++ {
		prev := monthly[i-1].TradePrice()
		if prev <= 0 {
			continue
		}
		returns = append(returns, (monthly[i].TradePrice()-prev)/prev)
	}
	if len(returns) < 2 {
		return nil
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return nil
	}
	stdDev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil
	}

	return &domain.SeriesStats{
		MonthlyReturn: mean,
		MonthlyStdDev: stdDev,
	}
}
