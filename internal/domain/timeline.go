package domain

import "time"

// BacktestPoint is one period of a historical buy-and-hold run.
type BacktestPoint struct {
	Date                  time.Time `json:"date"`
	Price                 float64   `json:"price"`
	Contribution          float64   `json:"contribution"`
	Units                 float64   `json:"units"`
	Cost                  float64   `json:"cost"`
	MarketValue           float64   `json:"marketValue"`
	NetValue              float64   `json:"netValue"`
	UnrealizedGain        float64   `json:"unrealizedGain"`
	UnrealizedGainPercent float64   `json:"unrealizedGainPercent"`
	Drawdown              float64   `json:"drawdown"`
	RSI                   float64   `json:"rsi"`
}

type BacktestSummary struct {
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	Periods            int       `json:"periods"`
	TotalCost          float64   `json:"totalCost"`
	FinalValue         float64   `json:"finalValue"`
	FinalNetValue      float64   `json:"finalNetValue"`
	TotalReturnPercent float64   `json:"totalReturnPercent"`
	CAGR               float64   `json:"cagr"`
	MaxDrawdown        float64   `json:"maxDrawdown"`
	SharpeRatio        float64   `json:"sharpeRatio"`
	TotalDividends     float64   `json:"totalDividends"`
	TotalUnits         float64   `json:"totalUnits"`
}

// ForecastPoint is one month of the Monte Carlo projection. Capital is the
// deterministic contributed-capital trajectory; the p-fields are cross-path
// percentile bands of portfolio value.
type ForecastPoint struct {
	Date    time.Time `json:"date"`
	Capital float64   `json:"capital"`
	P10     float64   `json:"p10"`
	P25     float64   `json:"p25"`
	P50     float64   `json:"p50"`
	P75     float64   `json:"p75"`
	P90     float64   `json:"p90"`
}

type ForecastOutcome struct {
	Value         float64 `json:"value"`
	ReturnPercent float64 `json:"returnPercent"`
}

type ForecastSummary struct {
	TotalCapital float64         `json:"totalCapital"`
	Pessimistic  ForecastOutcome `json:"pessimistic"`
	Median       ForecastOutcome `json:"median"`
	Optimistic   ForecastOutcome `json:"optimistic"`
	Runs         int             `json:"runs"`
}

// SimulationPoint is one month of the fixed-rate compounding projection.
type SimulationPoint struct {
	Date        time.Time `json:"date"`
	Capital     float64   `json:"capital"`
	Value       float64   `json:"value"`
	Gain        float64   `json:"gain"`
	GainPercent float64   `json:"gainPercent"`
}

type SimulationSummary struct {
	FinalValue       float64 `json:"finalValue"`
	TotalCapital     float64 `json:"totalCapital"`
	TotalGain        float64 `json:"totalGain"`
	TotalGainPercent float64 `json:"totalGainPercent"`
	MonthlyRate      float64 `json:"monthlyRate"`
	DoublingYears    float64 `json:"doublingYears"`
}
