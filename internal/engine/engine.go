// Package engine implements the investment simulator: historical
// buy-and-hold backtests with periodic contributions, a Monte Carlo
// regime-model forecast, and a fixed-rate compounding projection. It is a
// pure function library - no I/O, no shared mutable state - and is safe to
// invoke concurrently.
package engine

import (
	"fmt"

	"wealthsim/internal/domain"
)

type Mode int

const (
	ModeBacktest Mode = iota
	ModeForecast
	ModeSimulation
)

func (m Mode) String() string {
	switch m {
	case ModeBacktest:
		return "backtest"
	case ModeForecast:
		return "forecast"
	case ModeSimulation:
		return "simulation"
	}
	return "unknown"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "backtest":
		return ModeBacktest, nil
	case "forecast":
		return ModeForecast, nil
	case "simulation":
		return ModeSimulation, nil
	}
	return 0, fmt.Errorf("unknown run mode %q", s)
}

// Result is the common shape of the three run outputs: a timeline plus a
// mode-specific summary. Callers that need the concrete fields type-switch
// on the implementation.
type Result interface {
	ResultMode() Mode
}

const (
	rsiPeriod          = 14
	periodsPerYear     = 12
	riskFreeRate       = 0.02
	maxSchedulePeriods = 360
)

// Run dispatches to the mode's runner. Backtest and forecast need a
// historical series; simulation runs from parameters alone.
func Run(mode Mode, series *domain.HistoricalSeries, params Parameters) (Result, error) {
	switch mode {
	case ModeBacktest:
		if series == nil {
			return nil, InsufficientDataError{Points: 0}
		}
		return Backtest(*series, params)
	case ModeForecast:
		if series == nil {
			return nil, InsufficientDataError{Points: 0}
		}
		return Forecast(*series, params)
	case ModeSimulation:
		return Simulate(params)
	}
	return nil, fmt.Errorf("unknown run mode %d", mode)
}
