package calculator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentileNearestRank(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	// nearest-rank with floor(n*p) indexing, no interpolation. p50 of 10
	// values is index 5 -> 60, not the interpolated 55.
	require.Equal(t, 60.0, PercentileNearestRank(sorted, 0.5))
	require.Equal(t, 20.0, PercentileNearestRank(sorted, 0.1))
	require.Equal(t, 100.0, PercentileNearestRank(sorted, 0.9))
	require.Equal(t, 10.0, PercentileNearestRank(sorted, 0))
	// p=1 clamps to the last element
	require.Equal(t, 100.0, PercentileNearestRank(sorted, 1))

	require.Equal(t, 0.0, PercentileNearestRank(nil, 0.5))
	require.Equal(t, 42.0, PercentileNearestRank([]float64{42}, 0.5))
}

func TestAnnualizedSharpe(t *testing.T) {
	t.Run("zero volatility yields zero", func(t *testing.T) {
		returns := []float64{0.01, 0.01, 0.01, 0.01}
		require.Equal(t, 0.0, AnnualizedSharpe(returns, 0.02, 12))
	})

	t.Run("too few points yields zero", func(t *testing.T) {
		require.Equal(t, 0.0, AnnualizedSharpe([]float64{0.05}, 0.02, 12))
		require.Equal(t, 0.0, AnnualizedSharpe(nil, 0.02, 12))
	})

	t.Run("positive excess return gives positive sharpe", func(t *testing.T) {
		returns := []float64{0.02, 0.01, 0.03, 0.015, 0.025, 0.02}
		s := AnnualizedSharpe(returns, 0.02, 12)
		require.Greater(t, s, 0.0)
	})
}

func TestCAGR(t *testing.T) {
	// doubling over 10 years is ~7.18%/yr
	require.InDelta(t, 0.0718, CAGR(200, 100, 10), 1e-3)
	require.Equal(t, 0.0, CAGR(200, 0, 10))
	require.Equal(t, 0.0, CAGR(200, 100, 0))
	require.Equal(t, 0.0, CAGR(0, 100, 10))
}

func TestNormalSampler(t *testing.T) {
	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := NewNormalSampler(rand.New(rand.NewSource(7)))
		b := NewNormalSampler(rand.New(rand.NewSource(7)))
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Sample(0.01, 0.05), b.Sample(0.01, 0.05))
		}
	})

	t.Run("matches requested moments", func(t *testing.T) {
		s := NewNormalSampler(rand.New(rand.NewSource(42)))
		n := 50000
		draws := make([]float64, n)
		for i := range draws {
			draws[i] = s.Sample(0.008, 0.05)
		}

		mean, stdev := MeanStdDev(draws)
		require.InDelta(t, 0.008, mean, 0.002)
		require.InDelta(t, 0.05, stdev, 0.002)
	})
}

func TestMeanStdDev(t *testing.T) {
	mean, stdev := MeanStdDev([]float64{1, 2, 3, 4})
	require.InDelta(t, 2.5, mean, 1e-9)
	require.InDelta(t, 1.29099, stdev, 1e-4)

	mean, stdev = MeanStdDev([]float64{5})
	require.Equal(t, 0.0, mean)
	require.Equal(t, 0.0, stdev)
}
