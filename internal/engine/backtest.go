package engine

import (
	"wealthsim/internal/calculator"
	"wealthsim/internal/domain"
	"wealthsim/internal/util"
)

type BacktestResult struct {
	Timeline []domain.BacktestPoint
	Summary  domain.BacktestSummary
}

func (BacktestResult) ResultMode() Mode { return ModeBacktest }

// Backtest replays a periodic-contribution buy-and-hold strategy over the
// historical series. Each period buys at that period's trade price after
// deducting commission; cost basis accumulates gross. Dividends recorded in
// a period's calendar month are reinvested at the period price when
// enabled. Drawdown tracks gross market value against its running peak.
func Backtest(series domain.HistoricalSeries, params Parameters) (*BacktestResult, error) {
	if err := params.validateBacktest(); err != nil {
		return nil, err
	}

	window := windowHistory(series.History, params)
	if len(window) < 2 {
		return nil, InsufficientDataError{Points: len(window)}
	}

	schedule := buildContributionSchedule(params)
	closes := make([]float64, len(window))
	for i, p := range window {
		closes[i] = p.TradePrice()
	}
	rsi := calculator.RSISeries(closes, rsiPeriod)
	dividendsByMonth := series.DividendsByMonth()

	var (
		totalUnits     float64
		totalCost      float64
		totalDividends float64
		peakValue      float64
		maxDrawdown    float64
		prevValue      float64
		returns        []float64
	)
	timeline := make([]domain.BacktestPoint, 0, len(window))

	for i, point := range window {
		price := closes[i]

		contribution := contributionAt(schedule, i)
		if i == 0 {
			contribution = params.InitialCapital
		}
		if params.DipBuyStrategy == DipBuyRSI && rsi[i] < params.RSIThreshold {
			contribution *= params.DipBuyMultiplier
		}

		invested := contribution * (1 - params.CommissionRate)
		if price > 0 && invested > 0 {
			totalUnits += invested / price
		}
		totalCost += contribution

		if params.ReinvestDividends {
			if perShare, ok := dividendsByMonth[util.MonthKey(point.Date)]; ok && perShare > 0 {
				cash := perShare * totalUnits
				if price > 0 {
					totalUnits += cash / price
				}
				totalDividends += cash
			}
		}

		marketValue := totalUnits * price
		if marketValue > peakValue {
			peakValue = marketValue
		}
		drawdown := 0.0
		if peakValue > 0 {
			drawdown = (peakValue - marketValue) / peakValue
		}
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}

		// estimated exit friction on the full position
		netValue := marketValue - marketValue*(params.CommissionRate+params.TaxRate)

		gain := marketValue - totalCost
		gainPercent := 0.0
		if totalCost > 0 {
			gainPercent = gain / totalCost * 100
		}

		// month-over-month return with the period's own cash inflow
		// stripped out, so the sharpe ratio measures market performance
		// rather than deposits
		if i > 0 && prevValue > 0 {
			returns = append(returns, (marketValue-prevValue-invested)/prevValue)
		}
		prevValue = marketValue

		timeline = append(timeline, domain.BacktestPoint{
			Date:                  point.Date,
			Price:                 price,
			Contribution:          contribution,
			Units:                 totalUnits,
			Cost:                  totalCost,
			MarketValue:           marketValue,
			NetValue:              netValue,
			UnrealizedGain:        gain,
			UnrealizedGainPercent: gainPercent,
			Drawdown:              drawdown,
			RSI:                   rsi[i],
		})
	}

	last := timeline[len(timeline)-1]
	years := float64(len(window)) / periodsPerYear

	totalReturnPercent := 0.0
	if totalCost > 0 {
		totalReturnPercent = (last.MarketValue - totalCost) / totalCost * 100
	}

	summary := domain.BacktestSummary{
		StartDate:          window[0].Date,
		EndDate:            last.Date,
		Periods:            len(window),
		TotalCost:          totalCost,
		FinalValue:         last.MarketValue,
		FinalNetValue:      last.NetValue,
		TotalReturnPercent: totalReturnPercent,
		CAGR:               calculator.CAGR(last.MarketValue, totalCost, years),
		MaxDrawdown:        maxDrawdown,
		SharpeRatio:        calculator.AnnualizedSharpe(returns, riskFreeRate, periodsPerYear),
		TotalDividends:     totalDividends,
		TotalUnits:         totalUnits,
	}

	return &BacktestResult{Timeline: timeline, Summary: summary}, nil
}

// windowHistory applies the explicit inclusive date range when given,
// otherwise the trailing Years*12 periods clamped to the series length.
func windowHistory(history []domain.PricePoint, p Parameters) []domain.PricePoint {
	if p.StartDate != nil || p.EndDate != nil {
		out := []domain.PricePoint{}
		for _, point := range history {
			if p.StartDate != nil && point.Date.Before(*p.StartDate) {
				continue
			}
			if p.EndDate != nil && point.Date.After(*p.EndDate) {
				continue
			}
			out = append(out, point)
		}
		return out
	}

	n := p.Years * periodsPerYear
	if n > 0 && len(history) > n {
		return history[len(history)-n:]
	}
	return history
}
