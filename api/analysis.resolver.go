package api

import (
	"context"
	"fmt"
	"strings"
	"wealthsim/internal/engine"

	"github.com/gin-gonic/gin"
)

type analysisRequest struct {
	Mode string `json:"mode"`
	runRequest
}

type analysisResponse struct {
	Symbol   string `json:"symbol"`
	Analysis string `json:"analysis"`
}

// analysis reruns the requested mode and asks the model for plain-language
// commentary on the summary.
func (m ApiHandler) analysis(c *gin.Context) {
	ctx := context.Background()

	var requestBody analysisRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	mode, err := engine.ParseMode(requestBody.Mode)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	params, err := requestBody.toParameters()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	prompt, err := m.buildAnalysisPrompt(ctx, mode, requestBody, params)
	if err != nil {
		returnEngineError(err, c)
		return
	}

	analysis, err := m.GptRepository.ConstructMarketAnalysis(ctx, prompt)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, analysisResponse{
		Symbol:   requestBody.Symbol,
		Analysis: analysis,
	})
}

func (m ApiHandler) buildAnalysisPrompt(ctx context.Context, mode engine.Mode, req analysisRequest, params engine.Parameters) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run mode: %s\n", mode)
	if req.Symbol != "" {
		fmt.Fprintf(&sb, "asset: %s\n", req.Symbol)
	}
	fmt.Fprintf(&sb, "initial capital: %.0f, monthly contribution: %.0f, horizon: %d years\n",
		params.InitialCapital, params.MonthlyInvestment, params.Years)

	switch mode {
	case engine.ModeSimulation:
		result, err := engine.Simulate(params)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "fixed annual rate: %.2f%%\n", params.AnnualReturn*100)
		fmt.Fprintf(&sb, "final value: %.0f, total gain: %.1f%%, doubling estimate: %.1f years\n",
			result.Summary.FinalValue, result.Summary.TotalGainPercent, result.Summary.DoublingYears)
	case engine.ModeForecast:
		series, err := m.loadSeries(ctx, req.runRequest, params)
		if err != nil {
			return "", err
		}
		result, err := engine.Forecast(*series, params)
		if err != nil {
			return "", err
		}
		if series.Stats != nil {
			fmt.Fprintf(&sb, "historical monthly return: %.4f, stddev: %.4f\n",
				series.Stats.MonthlyReturn, series.Stats.MonthlyStdDev)
		}
		fmt.Fprintf(&sb, "monte carlo runs: %d\n", result.Summary.Runs)
		fmt.Fprintf(&sb, "p10 outcome: %.0f (%.1f%%), median: %.0f (%.1f%%), p90: %.0f (%.1f%%)\n",
			result.Summary.Pessimistic.Value, result.Summary.Pessimistic.ReturnPercent,
			result.Summary.Median.Value, result.Summary.Median.ReturnPercent,
			result.Summary.Optimistic.Value, result.Summary.Optimistic.ReturnPercent)
	case engine.ModeBacktest:
		series, err := m.loadSeries(ctx, req.runRequest, params)
		if err != nil {
			return "", err
		}
		result, err := engine.Backtest(*series, params)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "window: %s to %s (%d periods)\n",
			result.Summary.StartDate.Format("2006-01-02"), result.Summary.EndDate.Format("2006-01-02"), result.Summary.Periods)
		fmt.Fprintf(&sb, "total cost: %.0f, final value: %.0f, total return: %.1f%%\n",
			result.Summary.TotalCost, result.Summary.FinalValue, result.Summary.TotalReturnPercent)
		fmt.Fprintf(&sb, "cagr: %.2f%%, max drawdown: %.1f%%, sharpe: %.2f, dividends reinvested: %.0f\n",
			result.Summary.CAGR*100, result.Summary.MaxDrawdown*100, result.Summary.SharpeRatio, result.Summary.TotalDividends)
	}

	return sb.String(), nil
}
