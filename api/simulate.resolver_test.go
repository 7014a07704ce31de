package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(handler ApiHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/simulate", handler.simulate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, route string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, route, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSimulateResolver(t *testing.T) {
	router := newTestRouter(ApiHandler{})

	w := postJSON(t, router, "/simulate", map[string]any{
		"initialCapital":    100000,
		"monthlyInvestment": 0,
		"years":             1,
		"annualReturn":      0.12,
	})
	require.Equal(t, 200, w.Code)

	var response simulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Timeline, 12)
	require.InDelta(t, 112000, response.Summary.FinalValue, 1e-6)
	require.InDelta(t, math.Pow(1.12, 1.0/12)-1, response.Summary.MonthlyRate, 1e-12)
}

func TestSimulateResolverInvalidParams(t *testing.T) {
	router := newTestRouter(ApiHandler{})

	w := postJSON(t, router, "/simulate", map[string]any{"years": -3})
	require.Equal(t, 400, w.Code)
	require.Contains(t, w.Body.String(), "years")
}

func TestSimulateResolverMalformedBody(t *testing.T) {
	router := newTestRouter(ApiHandler{})

	req, err := http.NewRequest(http.MethodPost, "/simulate", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 400, w.Code)
}
