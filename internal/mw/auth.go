package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"heavyrent-backend/internal/auth"
)

// Context keys under which the authenticated caller's identity is
// stored for downstream handlers.
const (
	ContextUserIDKey = "auth_user_id"
	ContextEmailKey  = "auth_email"
)

// Auth validates the bearer token on the request and stores the
// caller's identity in the request context.
func Auth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated caller's user id, or 0 when the
// request did not pass through Auth.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
