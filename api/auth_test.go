package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "test-secret"

func signTestToken(t *testing.T, secret string, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseUserJwt(t *testing.T) {
	userID := uuid.NewString()

	t.Run("valid token", func(t *testing.T) {
		signed := signTestToken(t, testJwtSecret, userID, time.Now().Add(time.Hour))
		parsed, err := parseUserJwt(signed, testJwtSecret)
		require.NoError(t, err)
		require.Equal(t, userID, parsed.Subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed := signTestToken(t, "other-secret", userID, time.Now().Add(time.Hour))
		_, err := parseUserJwt(signed, testJwtSecret)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		signed := signTestToken(t, testJwtSecret, userID, time.Now().Add(-time.Hour))
		_, err := parseUserJwt(signed, testJwtSecret)
		require.Error(t, err)
	})
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := ApiHandler{JwtSecret: testJwtSecret}

	router := gin.New()
	router.GET("/protected", handler.authMiddleware, func(c *gin.Context) {
		userID, err := userIDFromContext(c)
		require.NoError(t, err)
		c.JSON(200, gin.H{"userID": userID})
	})

	t.Run("missing header", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, 401, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		userID := uuid.NewString()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, testJwtSecret, userID, time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)
		require.Contains(t, w.Body.String(), userID)
	})

	t.Run("non-uuid subject", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, testJwtSecret, "not-a-uuid", time.Now().Add(time.Hour)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, 401, w.Code)
	})
}
