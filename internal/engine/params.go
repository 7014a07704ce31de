package engine

import (
	"time"
)

type DipBuyStrategy string

const (
	DipBuyNone DipBuyStrategy = "none"
	DipBuyRSI  DipBuyStrategy = "rsi"
)

// InvestmentPhase overrides the flat monthly contribution for a leading
// stretch of the schedule: Months repetitions of Amount.
type InvestmentPhase struct {
	Months int
	Amount float64
}

// Parameters configures a single engine run. Every run receives its full
// configuration explicitly; DefaultParameters supplies the baseline and
// callers overwrite what they need, so results are reproducible from inputs
// alone.
type Parameters struct {
	InitialCapital    float64
	MonthlyInvestment float64
	Years             int

	// explicit backtest window; overrides the trailing Years*12 periods
	StartDate *time.Time
	EndDate   *time.Time

	// simulation mode only
	AnnualReturn float64

	CommissionRate float64
	TaxRate        float64

	ReinvestDividends bool

	DipBuyStrategy   DipBuyStrategy
	RSIThreshold     float64
	DipBuyMultiplier float64

	UsePhases        bool
	InvestmentPhases []InvestmentPhase

	MonteCarloRuns int
	// Seed fixes the forecast's random streams; 0 means derive from the
	// clock. Two runs with the same seed and parameters produce identical
	// percentile bands.
	Seed int64
}

func DefaultParameters() Parameters {
	return Parameters{
		InitialCapital:    100000,
		MonthlyInvestment: 10000,
		Years:             10,
		AnnualReturn:      0.07,
		CommissionRate:    0.001425,
		TaxRate:           0.003,
		ReinvestDividends: true,
		DipBuyStrategy:    DipBuyNone,
		RSIThreshold:      30,
		DipBuyMultiplier:  2,
		MonteCarloRuns:    1000,
	}
}

func (p Parameters) validateContributions() error {
	if p.InitialCapital < 0 {
		return InvalidParameterError{Field: "initialCapital", Reason: "must be non-negative"}
	}
	if p.MonthlyInvestment < 0 {
		return InvalidParameterError{Field: "monthlyInvestment", Reason: "must be non-negative"}
	}
	if p.UsePhases {
		if len(p.InvestmentPhases) == 0 {
			return InvalidParameterError{Field: "investmentPhases", Reason: "phased schedule enabled with no phases"}
		}
		for _, phase := range p.InvestmentPhases {
			if phase.Months <= 0 {
				return InvalidParameterError{Field: "investmentPhases", Reason: "phase months must be positive"}
			}
			if phase.Amount < 0 {
				return InvalidParameterError{Field: "investmentPhases", Reason: "phase amount must be non-negative"}
			}
		}
	}
	return nil
}

func (p Parameters) validateBacktest() error {
	if err := p.validateContributions(); err != nil {
		return err
	}
	if p.StartDate == nil && p.EndDate == nil && p.Years <= 0 {
		return InvalidParameterError{Field: "years", Reason: "must be positive when no explicit date range is given"}
	}
	if p.CommissionRate < 0 || p.TaxRate < 0 {
		return InvalidParameterError{Field: "commissionRate", Reason: "cost rates must be non-negative"}
	}
	if p.DipBuyStrategy == DipBuyRSI && p.DipBuyMultiplier <= 0 {
		return InvalidParameterError{Field: "dipBuyMultiplier", Reason: "must be positive"}
	}
	return nil
}

func (p Parameters) validateForecast() error {
	if err := p.validateContributions(); err != nil {
		return err
	}
	if p.Years <= 0 {
		return InvalidParameterError{Field: "years", Reason: "must be positive"}
	}
	if p.MonteCarloRuns <= 0 {
		return InvalidParameterError{Field: "monteCarloRuns", Reason: "must be positive"}
	}
	return nil
}

func (p Parameters) validateSimulation() error {
	if err := p.validateContributions(); err != nil {
		return err
	}
	if p.Years <= 0 {
		return InvalidParameterError{Field: "years", Reason: "must be positive"}
	}
	if p.AnnualReturn <= -1 {
		return InvalidParameterError{Field: "annualReturn", Reason: "must be greater than -100%"}
	}
	return nil
}
