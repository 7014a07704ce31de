package calculator

// RSISeries computes the Relative Strength Index for every index of a
// closing-price series, using the average gain and average loss over the
// trailing `period` changes. Indices before the window fills use whatever
// changes are available. When the window holds no losses the RSI is exactly
// 100.
func RSISeries(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	for i := range closes {
		start := i - period + 1
		if start < 1 {
			start = 1
		}

		avgGain := 0.0
		avgLoss := 0.0
		n := 0
		for j := start; j <= i; j++ {
			avgGain += gains[j]
			avgLoss += losses[j]
			n++
		}
		if n > 0 {
			avgGain /= float64(n)
			avgLoss /= float64(n)
		}

		if avgLoss == 0 {
			out[i] = 100
			continue
		}

		rs := avgGain / avgLoss
		out[i] = 100 - (100 / (1 + rs))
	}

	return out
}

// MovingAverage is a simple trailing-window mean. Entries before the window
// is full are nil; it backs display overlays, not the core accounting.
func MovingAverage(values []float64, window int) []*float64 {
	out := make([]*float64, len(values))
	if window <= 0 {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			avg := sum / float64(window)
			out[i] = &avg
		}
	}

	return out
}
