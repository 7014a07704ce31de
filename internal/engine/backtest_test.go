package engine

import (
	"errors"
	"testing"

	"wealthsim/internal/domain"
	"wealthsim/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearSeries builds a monthly series whose trade price rises by `step`
// each period starting at `start`.
func linearSeries(months int, start, step float64) domain.HistoricalSeries {
	history := make([]domain.PricePoint, months)
	for i := range history {
		price := start + float64(i)*step
		history[i] = domain.PricePoint{
			Date:   util.AddMonths(util.NewDate(2020, 1, 31), i),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 1000,
		}
	}
	return domain.HistoricalSeries{Name: "linear", History: history}
}

func TestBacktestDeterministicScenario(t *testing.T) {
	series := linearSeries(24, 100, 1)
	params := DefaultParameters()
	params.InitialCapital = 10000
	params.MonthlyInvestment = 1000
	params.Years = 2
	params.CommissionRate = 0
	params.TaxRate = 0
	params.ReinvestDividends = false

	result, err := Backtest(series, params)
	require.NoError(t, err)
	require.Len(t, result.Timeline, 24)

	// period 0 invests the lump sum, periods 1..23 the monthly amount
	wantCost := 10000.0 + 23*1000
	require.InDelta(t, wantCost, result.Summary.TotalCost, 1e-9)

	// units are exactly the sum of contribution/price at each period
	wantUnits := 10000.0 / 100
	for i := 1; i < 24; i++ {
		wantUnits += 1000.0 / (100 + float64(i))
	}
	require.InDelta(t, wantUnits, result.Summary.TotalUnits, 1e-9)
	require.InDelta(t, wantUnits*123, result.Summary.FinalValue, 1e-9)

	// a monotonically rising price never draws down
	require.Equal(t, 0.0, result.Summary.MaxDrawdown)
	require.True(t, result.Summary.CAGR > 0)
}

func TestBacktestMonotonicCost(t *testing.T) {
	series := linearSeries(36, 50, -0.5)
	// prices decline but stay positive; cost accounting must still be
	// non-decreasing
	params := DefaultParameters()
	params.Years = 3
	params.DipBuyStrategy = DipBuyRSI

	result, err := Backtest(series, params)
	require.NoError(t, err)

	prev := 0.0
	for _, point := range result.Timeline {
		require.GreaterOrEqual(t, point.Cost, prev)
		prev = point.Cost
	}
}

func TestBacktestDrawdownBounds(t *testing.T) {
	// sawtooth series to force real drawdowns
	history := []float64{100, 120, 90, 110, 80, 130, 70, 140, 100, 90, 150, 60}
	series := linearSeries(len(history), 0, 0)
	for i, p := range history {
		series.History[i].Close = p
	}

	params := DefaultParameters()
	params.Years = 1

	result, err := Backtest(series, params)
	require.NoError(t, err)

	peak := 0.0
	for _, point := range result.Timeline {
		require.GreaterOrEqual(t, point.Drawdown, 0.0)
		require.LessOrEqual(t, point.Drawdown, 1.0)
		if point.MarketValue >= peak {
			peak = point.MarketValue
			assert.Equal(t, 0.0, point.Drawdown)
		}
		require.True(t, point.RSI >= 0 && point.RSI <= 100)
	}
	require.GreaterOrEqual(t, result.Summary.MaxDrawdown, 0.0)
	require.LessOrEqual(t, result.Summary.MaxDrawdown, 1.0)
}

func TestBacktestInsufficientData(t *testing.T) {
	series := linearSeries(1, 100, 1)
	params := DefaultParameters()

	result, err := Backtest(series, params)
	require.Error(t, err)
	require.Nil(t, result)

	var insufficientErr InsufficientDataError
	require.True(t, errors.As(err, &insufficientErr))
	require.Equal(t, 1, insufficientErr.Points)
}

func TestBacktestDateWindow(t *testing.T) {
	series := linearSeries(48, 100, 1)
	params := DefaultParameters()
	params.StartDate = util.TimePointer(util.NewDate(2021, 1, 1))
	params.EndDate = util.TimePointer(util.NewDate(2021, 12, 31))

	result, err := Backtest(series, params)
	require.NoError(t, err)
	require.Equal(t, 12, result.Summary.Periods)
	for _, point := range result.Timeline {
		require.False(t, point.Date.Before(*params.StartDate))
		require.False(t, point.Date.After(*params.EndDate))
	}
}

func TestBacktestWindowTooNarrow(t *testing.T) {
	series := linearSeries(48, 100, 1)
	params := DefaultParameters()
	params.StartDate = util.TimePointer(util.NewDate(2021, 3, 1))
	params.EndDate = util.TimePointer(util.NewDate(2021, 3, 31))

	_, err := Backtest(series, params)
	var insufficientErr InsufficientDataError
	require.True(t, errors.As(err, &insufficientErr))
}

func TestBacktestPhasedSchedule(t *testing.T) {
	series := linearSeries(40, 100, 0)
	params := DefaultParameters()
	params.InitialCapital = 9999
	params.Years = 4
	params.CommissionRate = 0
	params.UsePhases = true
	params.InvestmentPhases = []InvestmentPhase{
		{Months: 12, Amount: 5000},
		{Months: 24, Amount: 10000},
	}

	result, err := Backtest(series, params)
	require.NoError(t, err)

	require.Equal(t, 9999.0, result.Timeline[0].Contribution)
	for p := 1; p <= 12; p++ {
		require.Equal(t, 5000.0, result.Timeline[p].Contribution, "period %d", p)
	}
	for p := 13; p <= 36; p++ {
		require.Equal(t, 10000.0, result.Timeline[p].Contribution, "period %d", p)
	}
	// schedule exhausted past the last phase
	for p := 37; p < 40; p++ {
		require.Equal(t, 0.0, result.Timeline[p].Contribution, "period %d", p)
	}
}

func TestBacktestEmptyPhases(t *testing.T) {
	series := linearSeries(24, 100, 1)
	params := DefaultParameters()
	params.UsePhases = true
	params.InvestmentPhases = nil

	_, err := Backtest(series, params)
	var invalidErr InvalidParameterError
	require.True(t, errors.As(err, &invalidErr))
	require.Equal(t, "investmentPhases", invalidErr.Field)
}

func TestBacktestDipBuyMultiplier(t *testing.T) {
	// steadily falling prices push RSI to 0, triggering the dip rule
	// every period once the threshold is crossed
	series := linearSeries(24, 200, -2)
	base := DefaultParameters()
	base.Years = 2
	base.CommissionRate = 0
	base.ReinvestDividends = false

	plain, err := Backtest(series, base)
	require.NoError(t, err)

	dip := base
	dip.DipBuyStrategy = DipBuyRSI
	dip.RSIThreshold = 30
	dip.DipBuyMultiplier = 2

	boosted, err := Backtest(series, dip)
	require.NoError(t, err)

	require.Greater(t, boosted.Summary.TotalCost, plain.Summary.TotalCost)
	require.Greater(t, boosted.Summary.TotalUnits, plain.Summary.TotalUnits)
}

func TestBacktestDividendReinvestment(t *testing.T) {
	series := linearSeries(12, 100, 0)
	series.Dividends = []domain.DividendEvent{
		{Date: util.NewDate(2020, 6, 15), Amount: 2},
	}

	params := DefaultParameters()
	params.InitialCapital = 10000
	params.MonthlyInvestment = 0
	params.Years = 1
	params.CommissionRate = 0
	params.TaxRate = 0

	withDiv, err := Backtest(series, params)
	require.NoError(t, err)

	params.ReinvestDividends = false
	withoutDiv, err := Backtest(series, params)
	require.NoError(t, err)

	// 100 units held in June, NT$2/share -> 200 reinvested at price 100
	require.InDelta(t, 200, withDiv.Summary.TotalDividends, 1e-9)
	require.InDelta(t, withoutDiv.Summary.TotalUnits+2, withDiv.Summary.TotalUnits, 1e-9)
	require.Equal(t, 0.0, withoutDiv.Summary.TotalDividends)

	// reinvested dividends grow value but not cost basis
	require.Equal(t, withoutDiv.Summary.TotalCost, withDiv.Summary.TotalCost)
}

func TestBacktestCommissionReducesUnits(t *testing.T) {
	series := linearSeries(12, 100, 0)
	params := DefaultParameters()
	params.InitialCapital = 10000
	params.MonthlyInvestment = 1000
	params.Years = 1
	params.TaxRate = 0
	params.ReinvestDividends = false
	params.CommissionRate = 0.01

	result, err := Backtest(series, params)
	require.NoError(t, err)

	// gross cost basis records the full contribution, commission only
	// shrinks the units bought
	wantCost := 10000.0 + 11*1000
	require.InDelta(t, wantCost, result.Summary.TotalCost, 1e-9)
	require.InDelta(t, wantCost*0.99/100, result.Summary.TotalUnits, 1e-9)
}

func TestBacktestFlatPricesZeroSharpe(t *testing.T) {
	series := linearSeries(24, 100, 0)
	params := DefaultParameters()
	params.Years = 2
	params.MonthlyInvestment = 0
	params.ReinvestDividends = false

	result, err := Backtest(series, params)
	require.NoError(t, err)
	// zero-volatility return series must not blow up the sharpe ratio
	require.Equal(t, 0.0, result.Summary.SharpeRatio)
}
