package domain

import (
	"time"

	"wealthsim/internal/util"
)

// PricePoint is one observation in a historical series. Close is used as
// the trade price unless an adjusted close is present.
type PricePoint struct {
	Date     time.Time `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	AdjClose *float64  `json:"adjClose,omitempty"`
	Volume   int64     `json:"volume"`
}

func (p PricePoint) TradePrice() float64 {
	if p.AdjClose != nil {
		return *p.AdjClose
	}
	return p.Close
}

type DividendEvent struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// SeriesStats carries precomputed monthly return statistics supplied by the
// data provider. The forecast falls back to defaults when absent.
type SeriesStats struct {
	MonthlyReturn float64 `json:"monthlyReturn"`
	MonthlyStdDev float64 `json:"monthlyStdDev"`
}

// HistoricalSeries is the input contract from the data provider: an
// ascending, unique-dated price history plus dividend events. Read-only to
// the simulation engine.
type HistoricalSeries struct {
	Name      string          `json:"name"`
	History   []PricePoint    `json:"history"`
	Dividends []DividendEvent `json:"dividends"`
	Stats     *SeriesStats    `json:"stats,omitempty"`
}

// DividendsByMonth aggregates per-share dividend amounts by calendar month,
// keyed "YYYY-MM". Reinvestment looks up the current period's month here.
func (s HistoricalSeries) DividendsByMonth() map[string]float64 {
	out := map[string]float64{}
	for _, d := range s.Dividends {
		out[util.MonthKey(d.Date)] += d.Amount
	}
	return out
}
