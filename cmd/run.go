package cmd

import (
	"context"
	"fmt"
	"os"
	"time"
	"wealthsim/api"
	"wealthsim/internal/domain"
	"wealthsim/internal/engine"
	"wealthsim/internal/export"
	"wealthsim/internal/util"

	"github.com/spf13/cobra"
)

type runFlags struct {
	symbol            string
	initialCapital    float64
	monthlyInvestment float64
	years             int
	startDate         string
	endDate           string
	annualReturn      float64
	commissionRate    float64
	taxRate           float64
	reinvestDividends bool
	dipBuyStrategy    string
	rsiThreshold      float64
	dipBuyMultiplier  float64
	monteCarloRuns    int
	seed              int64
	csvPath           string
}

var flags runFlags

func registerRunFlags(cmd *cobra.Command, defaults engine.Parameters) {
	cmd.Flags().StringVar(&flags.symbol, "symbol", "", "asset symbol, e.g. 0050.TW")
	cmd.Flags().Float64Var(&flags.initialCapital, "initial-capital", defaults.InitialCapital, "lump sum invested at period 0")
	cmd.Flags().Float64Var(&flags.monthlyInvestment, "monthly", defaults.MonthlyInvestment, "monthly contribution")
	cmd.Flags().IntVar(&flags.years, "years", defaults.Years, "horizon in years")
	cmd.Flags().StringVar(&flags.startDate, "start", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.endDate, "end", "", "window end (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&flags.annualReturn, "annual-return", defaults.AnnualReturn, "fixed annual rate (simulate mode)")
	cmd.Flags().Float64Var(&flags.commissionRate, "commission", defaults.CommissionRate, "commission rate on buys")
	cmd.Flags().Float64Var(&flags.taxRate, "tax", defaults.TaxRate, "transaction tax rate on exit")
	cmd.Flags().BoolVar(&flags.reinvestDividends, "reinvest-dividends", defaults.ReinvestDividends, "reinvest dividends at period price")
	cmd.Flags().StringVar(&flags.dipBuyStrategy, "dip-buy", string(defaults.DipBuyStrategy), "dip buy strategy: none or rsi")
	cmd.Flags().Float64Var(&flags.rsiThreshold, "rsi-threshold", defaults.RSIThreshold, "rsi level that triggers the dip buy")
	cmd.Flags().Float64Var(&flags.dipBuyMultiplier, "dip-multiplier", defaults.DipBuyMultiplier, "contribution multiplier on dip periods")
	cmd.Flags().IntVar(&flags.monteCarloRuns, "runs", defaults.MonteCarloRuns, "monte carlo path count (forecast mode)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed; 0 derives from the clock")
	cmd.Flags().StringVar(&flags.csvPath, "csv", "", "write the timeline to this csv file instead of printing json")
}

func (f runFlags) toParameters() (engine.Parameters, error) {
	params := engine.DefaultParameters()
	params.InitialCapital = f.initialCapital
	params.MonthlyInvestment = f.monthlyInvestment
	params.Years = f.years
	params.AnnualReturn = f.annualReturn
	params.CommissionRate = f.commissionRate
	params.TaxRate = f.taxRate
	params.ReinvestDividends = f.reinvestDividends
	params.RSIThreshold = f.rsiThreshold
	params.DipBuyMultiplier = f.dipBuyMultiplier
	params.MonteCarloRuns = f.monteCarloRuns
	params.Seed = f.seed

	switch engine.DipBuyStrategy(f.dipBuyStrategy) {
	case engine.DipBuyNone, engine.DipBuyRSI:
		params.DipBuyStrategy = engine.DipBuyStrategy(f.dipBuyStrategy)
	default:
		return params, fmt.Errorf("unknown dip buy strategy %q", f.dipBuyStrategy)
	}

	if f.startDate != "" {
		startDate, err := time.Parse(time.DateOnly, f.startDate)
		if err != nil {
			return params, fmt.Errorf("failed to parse start date: %w", err)
		}
		params.StartDate = &startDate
	}
	if f.endDate != "" {
		endDate, err := time.Parse(time.DateOnly, f.endDate)
		if err != nil {
			return params, fmt.Errorf("failed to parse end date: %w", err)
		}
		params.EndDate = &endDate
	}

	return params, nil
}

func loadSeriesForRun(handler *api.ApiHandler, params engine.Parameters) (*domain.HistoricalSeries, error) {
	if flags.symbol == "" {
		return nil, fmt.Errorf("--symbol is required")
	}

	tx, err := handler.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	end := time.Now().UTC()
	if params.EndDate != nil {
		end = *params.EndDate
	}
	start := end.AddDate(-params.Years, -1, 0)
	if params.StartDate != nil {
		start = params.StartDate.AddDate(0, -1, 0)
	}

	series, err := handler.HistoryService.GetSeries(context.Background(), tx, flags.symbol, start, end)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return series, nil
}

func emitResult(mode engine.Mode, result engine.Result) error {
	if flags.csvPath == "" {
		util.Pprint(result)
		return nil
	}

	csvBytes, err := export.Csv(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(flags.csvPath, csvBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", flags.csvPath, err)
	}
	fmt.Printf("wrote %s timeline to %s\n", mode, flags.csvPath)
	return nil
}

func runWithSeries(mode engine.Mode) error {
	params, err := flags.toParameters()
	if err != nil {
		return err
	}

	handler, err := InitializeDependencies()
	if err != nil {
		return err
	}
	defer CloseDependencies(handler)

	series, err := loadSeriesForRun(handler, params)
	if err != nil {
		return err
	}

	result, err := engine.Run(mode, series, params)
	if err != nil {
		return err
	}

	return emitResult(mode, result)
}

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Replay the contribution plan against historical prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithSeries(engine.ModeBacktest)
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project the plan forward with a Monte Carlo regime model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithSeries(engine.ModeForecast)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Compound the plan at a fixed annual rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := flags.toParameters()
		if err != nil {
			return err
		}

		result, err := engine.Simulate(params)
		if err != nil {
			return err
		}

		return emitResult(engine.ModeSimulation, result)
	},
}

func init() {
	defaults := engine.DefaultParameters()
	registerRunFlags(backtestCmd, defaults)
	registerRunFlags(forecastCmd, defaults)
	registerRunFlags(simulateCmd, defaults)
}
