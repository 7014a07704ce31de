package engine

import (
	"math"

	"wealthsim/internal/domain"
	"wealthsim/internal/util"
)

type SimulationResult struct {
	Timeline []domain.SimulationPoint
	Summary  domain.SimulationSummary
}

func (SimulationResult) ResultMode() Mode { return ModeSimulation }

// Simulate compounds the contribution plan at a fixed annual growth rate.
// No historical data is involved; the monthly rate is the geometric
// twelfth root of the annual rate so a full year compounds exactly.
func Simulate(params Parameters) (*SimulationResult, error) {
	if err := params.validateSimulation(); err != nil {
		return nil, err
	}

	monthlyRate := math.Pow(1+params.AnnualReturn, 1.0/periodsPerYear) - 1
	months := params.Years * periodsPerYear
	start := startDate(params)

	portfolio := params.InitialCapital
	capital := params.InitialCapital
	timeline := make([]domain.SimulationPoint, months)

	for m := 0; m < months; m++ {
		portfolio = portfolio*(1+monthlyRate) + params.MonthlyInvestment
		capital += params.MonthlyInvestment

		gain := portfolio - capital
		gainPercent := 0.0
		if capital > 0 {
			gainPercent = gain / capital * 100
		}

		timeline[m] = domain.SimulationPoint{
			Date:        util.AddMonths(start, m+1),
			Capital:     capital,
			Value:       portfolio,
			Gain:        gain,
			GainPercent: gainPercent,
		}
	}

	doublingYears := 0.0
	if params.AnnualReturn > 0 {
		// rule of 72 estimate
		doublingYears = 72 / (params.AnnualReturn * 100)
	}

	last := timeline[months-1]
	summary := domain.SimulationSummary{
		FinalValue:       last.Value,
		TotalCapital:     last.Capital,
		TotalGain:        last.Gain,
		TotalGainPercent: last.GainPercent,
		MonthlyRate:      monthlyRate,
		DoublingYears:    doublingYears,
	}

	return &SimulationResult{Timeline: timeline, Summary: summary}, nil
}
