package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildContributionScheduleFlat(t *testing.T) {
	params := DefaultParameters()
	params.MonthlyInvestment = 2500

	schedule := buildContributionSchedule(params)
	require.Len(t, schedule, maxSchedulePeriods)
	for _, amount := range schedule {
		require.Equal(t, 2500.0, amount)
	}
}

func TestBuildContributionSchedulePhased(t *testing.T) {
	params := DefaultParameters()
	params.UsePhases = true
	params.InvestmentPhases = []InvestmentPhase{
		{Months: 3, Amount: 1000},
		{Months: 2, Amount: 500},
	}

	schedule := buildContributionSchedule(params)
	require.Equal(t, []float64{1000, 1000, 1000, 500, 500}, schedule)
}

func TestContributionAt(t *testing.T) {
	schedule := []float64{100, 200, 300}

	require.Equal(t, 0.0, contributionAt(schedule, 0))
	require.Equal(t, 100.0, contributionAt(schedule, 1))
	require.Equal(t, 300.0, contributionAt(schedule, 3))
	require.Equal(t, 0.0, contributionAt(schedule, 4))
	require.Equal(t, 0.0, contributionAt(schedule, -1))
}
