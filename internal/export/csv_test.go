package export

import (
	"strings"
	"testing"

	"wealthsim/internal/domain"
	"wealthsim/internal/engine"
	"wealthsim/internal/util"

	"github.com/stretchr/testify/require"
)

func TestCsvBacktest(t *testing.T) {
	result := &engine.BacktestResult{
		Timeline: []domain.BacktestPoint{
			{
				Date:         util.NewDate(2024, 1, 31),
				Price:        100,
				Contribution: 10000,
				Units:        100,
				Cost:         10000,
				MarketValue:  10000,
				NetValue:     9955.75,
				RSI:          55.5,
			},
		},
	}

	out, err := Csv(result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "date,price,contribution,units,cost,marketValue,netValue,unrealizedGain,unrealizedGainPercent,drawdown,rsi", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "2024-01-31,100,10000,100,10000,10000,9955.75"))
}

func TestCsvForecast(t *testing.T) {
	result := &engine.ForecastResult{
		Timeline: []domain.ForecastPoint{
			{Date: util.NewDate(2026, 2, 28), Capital: 110000, P10: 1, P25: 2, P50: 3, P75: 4, P90: 5},
			{Date: util.NewDate(2026, 3, 31), Capital: 120000, P10: 2, P25: 3, P50: 4, P75: 5, P90: 6},
		},
	}

	out, err := Csv(result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "date,capital,p10,p25,p50,p75,p90", lines[0])
	require.Equal(t, "2026-02-28,110000,1,2,3,4,5", lines[1])
}

func TestCsvSimulation(t *testing.T) {
	result := &engine.SimulationResult{
		Timeline: []domain.SimulationPoint{
			{Date: util.NewDate(2026, 2, 28), Capital: 101000, Value: 101565, Gain: 565, GainPercent: 0.559},
		},
	}

	out, err := Csv(result)
	require.NoError(t, err)
	require.Contains(t, string(out), "date,capital,value,gain,gainPercent")
	require.Contains(t, string(out), "2026-02-28,101000,101565,565,0.559")
}

func TestCsvUnsupported(t *testing.T) {
	_, err := Csv(nil)
	require.Error(t, err)
}

func TestFilename(t *testing.T) {
	asOf := util.NewDate(2026, 8, 31)
	require.Equal(t, "0050.TW_backtest_20260831.csv", Filename(engine.ModeBacktest, "0050.TW", asOf))
	require.Equal(t, "simulation_simulation_20260831.csv", Filename(engine.ModeSimulation, "", asOf))
}
