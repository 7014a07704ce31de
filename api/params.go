package api

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"wealthsim/internal/domain"
	"wealthsim/internal/engine"
)

type investmentPhase struct {
	Months int     `json:"months"`
	Amount float64 `json:"amount"`
}

// runRequest is the JSON body shared by the three run endpoints and
// /export. Absent fields keep engine defaults, so the dashboard only sends
// what the user changed.
type runRequest struct {
	Symbol string `json:"symbol"`

	InitialCapital    *float64 `json:"initialCapital"`
	MonthlyInvestment *float64 `json:"monthlyInvestment"`
	Years             *int     `json:"years"`
	StartDate         *string  `json:"startDate"`
	EndDate           *string  `json:"endDate"`
	AnnualReturn      *float64 `json:"annualReturn"`
	CommissionRate    *float64 `json:"commissionRate"`
	TaxRate           *float64 `json:"taxRate"`
	ReinvestDividends *bool    `json:"reinvestDividends"`

	DipBuyStrategy   *string  `json:"dipBuyStrategy"`
	RSIThreshold     *float64 `json:"rsiThreshold"`
	DipBuyMultiplier *float64 `json:"dipBuyMultiplier"`

	InvestmentPhases []investmentPhase `json:"investmentPhases"`

	MonteCarloRuns *int   `json:"monteCarloRuns"`
	Seed           *int64 `json:"seed"`
}

func (r runRequest) toParameters() (engine.Parameters, error) {
	params := engine.DefaultParameters()

	if r.InitialCapital != nil {
		params.InitialCapital = *r.InitialCapital
	}
	if r.MonthlyInvestment != nil {
		params.MonthlyInvestment = *r.MonthlyInvestment
	}
	if r.Years != nil {
		params.Years = *r.Years
	}
	if r.StartDate != nil {
		startDate, err := time.Parse(time.DateOnly, *r.StartDate)
		if err != nil {
			return params, fmt.Errorf("failed to parse startDate: %w", err)
		}
		params.StartDate = &startDate
	}
	if r.EndDate != nil {
		endDate, err := time.Parse(time.DateOnly, *r.EndDate)
		if err != nil {
			return params, fmt.Errorf("failed to parse endDate: %w", err)
		}
		params.EndDate = &endDate
	}
	if r.AnnualReturn != nil {
		params.AnnualReturn = *r.AnnualReturn
	}
	if r.CommissionRate != nil {
		params.CommissionRate = *r.CommissionRate
	}
	if r.TaxRate != nil {
		params.TaxRate = *r.TaxRate
	}
	if r.ReinvestDividends != nil {
		params.ReinvestDividends = *r.ReinvestDividends
	}
	if r.DipBuyStrategy != nil {
		switch engine.DipBuyStrategy(*r.DipBuyStrategy) {
		case engine.DipBuyNone, engine.DipBuyRSI:
			params.DipBuyStrategy = engine.DipBuyStrategy(*r.DipBuyStrategy)
		default:
			return params, fmt.Errorf("unknown dipBuyStrategy %q", *r.DipBuyStrategy)
		}
	}
	if r.RSIThreshold != nil {
		params.RSIThreshold = *r.RSIThreshold
	}
	if r.DipBuyMultiplier != nil {
		params.DipBuyMultiplier = *r.DipBuyMultiplier
	}
	if len(r.InvestmentPhases) > 0 {
		params.UsePhases = true
		for _, phase := range r.InvestmentPhases {
			params.InvestmentPhases = append(params.InvestmentPhases, engine.InvestmentPhase{
				Months: phase.Months,
				Amount: phase.Amount,
			})
		}
	}
	if r.MonteCarloRuns != nil {
		params.MonteCarloRuns = *r.MonteCarloRuns
	}
	if r.Seed != nil {
		params.Seed = *r.Seed
	}

	return params, nil
}

// seriesWindow is the quote range to fetch for a run: the explicit dates
// when given, otherwise the trailing horizon with a one-month pad so the
// month-end resample has a full leading month.
func (r runRequest) seriesWindow(params engine.Parameters) (time.Time, time.Time) {
	now := time.Now().UTC()
	end := now
	if params.EndDate != nil {
		end = *params.EndDate
	}
	start := end.AddDate(-params.Years, -1, 0)
	if params.StartDate != nil {
		start = params.StartDate.AddDate(0, -1, 0)
	}
	return start, end
}

// loadSeries runs the history lookup in a read-only transaction.
func (m ApiHandler) loadSeries(ctx context.Context, req runRequest, params engine.Parameters) (*domain.HistoricalSeries, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	tx, err := m.Db.BeginTx(
		ctx,
		&sql.TxOptions{
			Isolation: sql.LevelReadCommitted,
		},
	)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	start, end := req.seriesWindow(params)
	series, err := m.HistoryService.GetSeries(ctx, tx, req.Symbol, start, end)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return series, nil
}
