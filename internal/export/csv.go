// Package export renders engine results as CSV for download from the
// dashboard.
package export

import (
	"fmt"
	"time"

	"wealthsim/internal/domain"
	"wealthsim/internal/engine"

	"github.com/gocarina/gocsv"
)

type backtestRow struct {
	Date                  string  `csv:"date"`
	Price                 float64 `csv:"price"`
	Contribution          float64 `csv:"contribution"`
	Units                 float64 `csv:"units"`
	Cost                  float64 `csv:"cost"`
	MarketValue           float64 `csv:"marketValue"`
	NetValue              float64 `csv:"netValue"`
	UnrealizedGain        float64 `csv:"unrealizedGain"`
	UnrealizedGainPercent float64 `csv:"unrealizedGainPercent"`
	Drawdown              float64 `csv:"drawdown"`
	RSI                   float64 `csv:"rsi"`
}

type forecastRow struct {
	Date    string  `csv:"date"`
	Capital float64 `csv:"capital"`
	P10     float64 `csv:"p10"`
	P25     float64 `csv:"p25"`
	P50     float64 `csv:"p50"`
	P75     float64 `csv:"p75"`
	P90     float64 `csv:"p90"`
}

type simulationRow struct {
	Date        string  `csv:"date"`
	Capital     float64 `csv:"capital"`
	Value       float64 `csv:"value"`
	Gain        float64 `csv:"gain"`
	GainPercent float64 `csv:"gainPercent"`
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Csv marshals a run's timeline with one row per period and a header row
// matching the timeline's json field names.
func Csv(result engine.Result) ([]byte, error) {
	switch r := result.(type) {
	case *engine.BacktestResult:
		return backtestCsv(r.Timeline)
	case *engine.ForecastResult:
		return forecastCsv(r.Timeline)
	case *engine.SimulationResult:
		return simulationCsv(r.Timeline)
	}
	return nil, fmt.Errorf("unsupported result type %T", result)
}

// Filename is the suggested download name for a run's export.
func Filename(mode engine.Mode, name string, asOf time.Time) string {
	if name == "" {
		name = mode.String()
	}
	return fmt.Sprintf("%s_%s_%s.csv", name, mode.String(), asOf.Format("20060102"))
}

func backtestCsv(timeline []domain.BacktestPoint) ([]byte, error) {
	rows := make([]backtestRow, len(timeline))
	for i, p := range timeline {
		rows[i] = backtestRow{
			Date:                  formatDate(p.Date),
			Price:                 p.Price,
			Contribution:          p.Contribution,
			Units:                 p.Units,
			Cost:                  p.Cost,
			MarketValue:           p.MarketValue,
			NetValue:              p.NetValue,
			UnrealizedGain:        p.UnrealizedGain,
			UnrealizedGainPercent: p.UnrealizedGainPercent,
			Drawdown:              p.Drawdown,
			RSI:                   p.RSI,
		}
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backtest csv: %w", err)
	}
	return out, nil
}

func forecastCsv(timeline []domain.ForecastPoint) ([]byte, error) {
	rows := make([]forecastRow, len(timeline))
	for i, p := range timeline {
		rows[i] = forecastRow{
			Date:    formatDate(p.Date),
			Capital: p.Capital,
			P10:     p.P10,
			P25:     p.P25,
			P50:     p.P50,
			P75:     p.P75,
			P90:     p.P90,
		}
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal forecast csv: %w", err)
	}
	return out, nil
}

func simulationCsv(timeline []domain.SimulationPoint) ([]byte, error) {
	rows := make([]simulationRow, len(timeline))
	for i, p := range timeline {
		rows[i] = simulationRow{
			Date:        formatDate(p.Date),
			Capital:     p.Capital,
			Value:       p.Value,
			Gain:        p.Gain,
			GainPercent: p.GainPercent,
		}
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal simulation csv: %w", err)
	}
	return out, nil
}
