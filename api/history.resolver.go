package api

import (
	"context"
	"fmt"
	"time"
	"wealthsim/internal/domain"

	"github.com/gin-gonic/gin"
)

type historyResponse struct {
	Symbol    string                 `json:"symbol"`
	History   []domain.PricePoint    `json:"history"`
	Dividends []domain.DividendEvent `json:"dividends"`
	Stats     *domain.SeriesStats    `json:"stats,omitempty"`
}

// history serves the monthly series for charting. Optional start/end query
// params (YYYY-MM-DD) default to the trailing ten years.
func (m ApiHandler) history(c *gin.Context) {
	ctx := context.Background()

	symbol := c.Param("symbol")
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	end := time.Now().UTC()
	start := end.AddDate(-10, 0, 0)
	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to parse start: %w", err), c, 400)
			return
		}
		start = parsed
	}
	if s := c.Query("end"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to parse end: %w", err), c, 400)
			return
		}
		end = parsed
	}

	tx, err := m.Db.BeginTx(ctx, nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	series, err := m.HistoryService.GetSeries(ctx, tx, symbol, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, historyResponse{
		Symbol:    series.Name,
		History:   series.History,
		Dividends: series.Dividends,
		Stats:     series.Stats,
	})
}
