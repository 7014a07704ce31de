package api

import (
	"wealthsim/internal/domain"
	"wealthsim/internal/engine"

	"github.com/gin-gonic/gin"
)

type simulateResponse struct {
	Timeline []domain.SimulationPoint `json:"timeline"`
	Summary  domain.SimulationSummary `json:"summary"`
}

// simulate runs the fixed-rate projection. It needs no market data, so no
// transaction is opened.
func (m ApiHandler) simulate(c *gin.Context) {
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

	result, err := engine.Simulate(params)
	if err != nil {
		returnEngineError(err, c)
		return
	}

	c.JSON(200, simulateResponse{
		Timeline: result.Timeline,
		Summary:  result.Summary,
	})
}
