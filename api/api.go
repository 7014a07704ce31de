package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"wealthsim/internal/engine"
	"wealthsim/internal/logger"
	"wealthsim/internal/repository"
	"wealthsim/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                  *sql.DB
	HistoryService      service.HistoryService
	WatchlistRepository repository.WatchlistRepository
	GptRepository       repository.GptRepository
	JwtSecret           string
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to wealthsim"})
	})
	router.POST("/backtest", m.backtest)
	router.POST("/forecast", m.forecast)
	router.POST("/simulate", m.simulate)
	router.GET("/history/:symbol", m.history)
	router.POST("/export", m.export)
	router.POST("/analysis", m.analysis)

	watchlist := router.Group("/watchlist", m.authMiddleware)
	watchlist.GET("", m.listWatchlist)
	watchlist.POST("", m.addWatchlistItem)
	watchlist.DELETE("/:id", m.removeWatchlistItem)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnEngineError maps bad inputs to 400 and everything else to 500.
func returnEngineError(err error, c *gin.Context) {
	var invalidErr engine.InvalidParameterError
	var insufficientErr engine.InsufficientDataError
	if errors.As(err, &invalidErr) || errors.As(err, &insufficientErr) {
		returnErrorJsonCode(err, c, 400)
		return
	}
	returnErrorJson(err, c)
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	requestID := uuid.NewString()
	ctx.Set("requestID", requestID)

	start := time.Now().UTC()
	ctx.Next()

	logger.Infow("handled request",
		"requestID", requestID,
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"ip", ctx.ClientIP(),
		"statusCode", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"responseBytes", w.body.Len(),
	)
}
