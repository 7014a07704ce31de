package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRSISeries(t *testing.T) {
	t.Run("bounded between 0 and 100", func(t *testing.T) {
		closes := []float64{100, 102, 101, 105, 103, 99, 104, 108, 107, 110, 106, 111, 115, 112, 118, 116}
		for _, rsi := range RSISeries(closes, 14) {
			require.GreaterOrEqual(t, rsi, 0.0)
			require.LessOrEqual(t, rsi, 100.0)
		}
	})

	t.Run("exactly 100 with zero losses", func(t *testing.T) {
		closes := make([]float64, 20)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		rsi := RSISeries(closes, 14)
		require.Equal(t, 100.0, rsi[len(rsi)-1])
	})

	t.Run("exactly 0 with zero gains", func(t *testing.T) {
		closes := make([]float64, 20)
		for i := range closes {
			closes[i] = 100 - float64(i)
		}
		rsi := RSISeries(closes, 14)
		require.Equal(t, 0.0, rsi[len(rsi)-1])
	})

	t.Run("known small case", func(t *testing.T) {
		// two changes in window: +2 gain, -1 loss
		// avgGain=1, avgLoss=0.5, RS=2, RSI = 100 - 100/3
		closes := []float64{100, 102, 101}
		rsi := RSISeries(closes, 14)
		require.InDelta(t, 100-100.0/3, rsi[2], 1e-9)
	})

	t.Run("flat series reads 100 by convention", func(t *testing.T) {
		closes := []float64{100, 100, 100, 100}
		rsi := RSISeries(closes, 14)
		for _, v := range rsi {
			require.Equal(t, 100.0, v)
		}
	})
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	ma := MovingAverage(values, 3)

	require.Nil(t, ma[0])
	require.Nil(t, ma[1])
	require.NotNil(t, ma[2])
	require.InDelta(t, 2.0, *ma[2], 1e-9)
	require.InDelta(t, 3.0, *ma[3], 1e-9)
	require.InDelta(t, 4.0, *ma[4], 1e-9)
}
