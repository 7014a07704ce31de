package api

import (
	"context"
	"fmt"
	"time"
	"wealthsim/internal/engine"
	"wealthsim/internal/export"

	"github.com/gin-gonic/gin"
)

type exportRequest struct {
	Mode string `json:"mode"`
	runRequest
}

// export reruns the requested mode and streams the timeline as a csv
// attachment.
func (m ApiHandler) export(c *gin.Context) {
	ctx := context.Background()

	var requestBody exportRequest
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

	var result engine.Result
	if mode == engine.ModeSimulation {
		result, err = engine.Run(mode, nil, params)
	} else {
		series, loadErr := m.loadSeries(ctx, requestBody.runRequest, params)
		if loadErr != nil {
			returnErrorJson(loadErr, c)
			return
		}
		result, err = engine.Run(mode, series, params)
	}
	if err != nil {
		returnEngineError(err, c)
		return
	}

	csvBytes, err := export.Csv(result)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	filename := export.Filename(mode, requestBody.Symbol, time.Now().UTC())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv", csvBytes)
}
