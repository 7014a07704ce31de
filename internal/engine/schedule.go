package engine

// buildContributionSchedule lays out the nominal contribution for periods
// 1..n. A phased schedule concatenates each phase's amount for its month
// count; otherwise the flat monthly contribution repeats up to the schedule
// cap. Period 0 always invests the initial capital and never consumes the
// schedule.
func buildContributionSchedule(p Parameters) []float64 {
	if p.UsePhases {
		out := []float64{}
		for _, phase := range p.InvestmentPhases {
			for i := 0; i < phase.Months; i++ {
				out = append(out, phase.Amount)
			}
		}
		return out
	}

	out := make([]float64, maxSchedulePeriods)
	for i := range out {
		out[i] = p.MonthlyInvestment
	}
	return out
}

// contributionAt is the scheduled amount for a 1-based period index;
// periods past the end of the schedule contribute nothing.
func contributionAt(schedule []float64, period int) float64 {
	if period < 1 || period > len(schedule) {
		return 0
	}
	return schedule[period-1]
}
