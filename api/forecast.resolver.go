package api

import (
	"context"
	"wealthsim/internal/domain"
	"wealthsim/internal/engine"
	"wealthsim/internal/logger"

	"github.com/gin-gonic/gin"
)

type forecastResponse struct {
	Symbol   string                 `json:"symbol"`
	Timeline []domain.ForecastPoint `json:"timeline"`
	Summary  domain.ForecastSummary `json:"summary"`
}

func (m ApiHandler) forecast(c *gin.Context) {
	profile, endProfile := domain.NewProfile()
	defer func() {
		endProfile()
		logger.Infow("forecast profile", "totalMs", profile.TotalMs, "events", profile.Events)
	}()
	ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)

	var requestBody runRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	params, err := requestBody.toParameters()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	series, err := m.loadSeries(ctx, requestBody, params)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	profile.Add("loaded series")

	result, err := engine.Forecast(*series, params)
	if err != nil {
		returnEngineError(err, c)
		return
	}
	profile.Add("ran forecast")

	c.JSON(200, forecastResponse{
		Symbol:   requestBody.Symbol,
		Timeline: result.Timeline,
		Summary:  result.Summary,
	})
}
