package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimulateLumpSumCompounds(t *testing.T) {
	params := DefaultParameters()
	params.InitialCapital = 100000
	params.MonthlyInvestment = 0
	params.Years = 10
	params.AnnualReturn = 0.07

	result, err := Simulate(params)
	require.NoError(t, err)
	require.Len(t, result.Timeline, 120)

	// with no contributions the monthly rate must compound back to
	// exactly the annual rate
	want := 100000 * math.Pow(1.07, 10)
	require.InDelta(t, want, result.Summary.FinalValue, 1e-6)
	require.Equal(t, 100000.0, result.Summary.TotalCapital)

	yearEnd := result.Timeline[11]
	require.InDelta(t, 100000*1.07, yearEnd.Value, 1e-6)
}

func TestSimulateWithContributions(t *testing.T) {
	params := DefaultParameters()
	params.InitialCapital = 10000
	params.MonthlyInvestment = 1000
	params.Years = 2
	params.AnnualReturn = 0.06

	result, err := Simulate(params)
	require.NoError(t, err)

	r := math.Pow(1.06, 1.0/12) - 1
	want := 10000.0
	for m := 0; m < 24; m++ {
		want = want*(1+r) + 1000
	}
	require.InDelta(t, want, result.Summary.FinalValue, 1e-6)
	require.Equal(t, 10000.0+24*1000, result.Summary.TotalCapital)
	require.InDelta(t, want-34000, result.Summary.TotalGain, 1e-6)

	prev := 0.0
	for _, point := range result.Timeline {
		require.Greater(t, point.Value, prev)
		prev = point.Value
	}
}

func TestSimulateRuleOf72(t *testing.T) {
	params := DefaultParameters()
	params.AnnualReturn = 0.06

	result, err := Simulate(params)
	require.NoError(t, err)
	require.InDelta(t, 12.0, result.Summary.DoublingYears, 1e-9)

	params.AnnualReturn = 0.08
	result, err = Simulate(params)
	require.NoError(t, err)
	require.InDelta(t, 9.0, result.Summary.DoublingYears, 1e-9)
}

func TestSimulateZeroRate(t *testing.T) {
	params := DefaultParameters()
	params.InitialCapital = 5000
	params.MonthlyInvestment = 100
	params.Years = 1
	params.AnnualReturn = 0

	result, err := Simulate(params)
	require.NoError(t, err)
	require.InDelta(t, 5000+12*100, result.Summary.FinalValue, 1e-9)
	require.Equal(t, 0.0, result.Summary.DoublingYears)
	require.InDelta(t, 0.0, result.Summary.TotalGain, 1e-9)
}

func TestSimulateInvalidYears(t *testing.T) {
	params := DefaultParameters()
	params.Years = 0

	_, err := Simulate(params)
	var invalidErr InvalidParameterError
	require.True(t, errors.As(err, &invalidErr))
	require.Equal(t, "years", invalidErr.Field)
}
