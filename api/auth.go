package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type userJwt struct {
	Subject   string  `json:"sub"`
	Email     *string `json:"email"`
	ExpiresAt int64   `json:"exp"`
	IssuedAt  int64   `json:"iat"`
}

func parseUserJwt(jwtStr string, decodeToken string) (*userJwt, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claims: %w", err)
	}

	var parsedJWT userJwt
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}

// authMiddleware requires a bearer token whose subject is the user id.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}
	jwtStr := strings.TrimPrefix(header, "Bearer ")

	parsedJWT, err := parseUserJwt(jwtStr, m.JwtSecret)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	userID, err := uuid.Parse(parsedJWT.Subject)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid subject in token: %w", err), c, 401)
		return
	}

	c.Set("userID", userID)
	c.Next()
}

func userIDFromContext(c *gin.Context) (uuid.UUID, error) {
	value, ok := c.Get("userID")
	if !ok {
		return uuid.Nil, fmt.Errorf("no user id in request context")
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("malformed user id in request context")
	}
	return userID, nil
}
