package domain

import (
	"testing"

	"wealthsim/internal/util"

	"github.com/stretchr/testify/require"
)

func TestDividendsByMonth(t *testing.T) {
	series := HistoricalSeries{
		Name: "test",
		Dividends: []DividendEvent{
			{Date: util.NewDate(2023, 3, 15), Amount: 1.5},
			{Date: util.NewDate(2023, 3, 30), Amount: 0.5},
			{Date: util.NewDate(2023, 9, 1), Amount: 2},
		},
	}

	byMonth := series.DividendsByMonth()
	require.Len(t, byMonth, 2)
	require.InDelta(t, 2.0, byMonth["2023-03"], 1e-9)
	require.InDelta(t, 2.0, byMonth["2023-09"], 1e-9)
}

func TestTradePrice(t *testing.T) {
	p := PricePoint{Close: 100}
	require.Equal(t, 100.0, p.TradePrice())

	adj := 98.5
	p.AdjClose = &adj
	require.Equal(t, 98.5, p.TradePrice())
}
