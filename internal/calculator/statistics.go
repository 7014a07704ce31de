package calculator

import (
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"
)

// AnnualizedSharpe computes the Sharpe ratio of a per-period return series,
// annualized by sqrt(periodsPerYear). riskFreeAnnual is divided evenly into
// a per-period rate. A zero-volatility series yields 0 rather than an error
// so the engine stays total.
func AnnualizedSharpe(returns []float64, riskFreeAnnual float64, periodsPerYear float64) float64 {
	if len(returns) < 2 {
		return 0
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return 0
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil || stdev == 0 {
		return 0
	}

	riskFreePerPeriod := riskFreeAnnual / periodsPerYear
	return (mean - riskFreePerPeriod) / stdev * math.Sqrt(periodsPerYear)
}

// MeanStdDev returns the sample mean and standard deviation of a return
// series. Degenerate inputs (fewer than 2 points) come back as zeros.
func MeanStdDev(values []float64) (float64, float64) {
	if len(values) < 2 {
		return 0, 0
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, 0
	}
	stdev, err := stats.StandardDeviationSample(values)
	if err != nil {
		return mean, 0
	}
	return mean, stdev
}

// CAGR is (finalValue/totalCost)^(1/years) - 1, with 0 for degenerate
// inputs (no cost basis, non-positive horizon).
func CAGR(finalValue, totalCost, years float64) float64 {
	if totalCost <= 0 || years <= 0 || finalValue <= 0 {
		return 0
	}
	return math.Pow(finalValue/totalCost, 1/years) - 1
}

// PercentileNearestRank picks the value at index floor(n*p) of an
// ascending-sorted sample. This is deliberately the nearest-rank estimate
// with no interpolation, matching how the forecast bands are defined;
// stats.Percentile interpolates and stats.PercentileNearestRank uses a
// ceiling rank, so neither matches.
func PercentileNearestRank(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Floor(float64(len(sorted)) * p))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// NormalSampler draws normally distributed values from a dedicated random
// source via the Box-Muller transform. Each path in the Monte Carlo
// forecast owns its own sampler so paths stay uncorrelated when run in
// parallel.
type NormalSampler struct {
	rng *rand.Rand
}

func NewNormalSampler(rng *rand.Rand) *NormalSampler {
	return &NormalSampler{rng: rng}
}

func (s *NormalSampler) Sample(mean, stddev float64) float64 {
	u1 := s.rng.Float64()
	for u1 == 0 {
		u1 = s.rng.Float64()
	}
	u2 := s.rng.Float64()

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}

// Uniform exposes the underlying source for regime-transition draws.
func (s *NormalSampler) Uniform() float64 {
	return s.rng.Float64()
}
