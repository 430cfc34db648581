package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripdeck/pkg/utils"
)

// SessionMiddleware resolves the itinerary session for a request. A valid
// bearer token keeps its session id; anything else gets a fresh session, with
// the signed token handed back in X-Session-Token.
func SessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := utils.ValidateSessionToken(tokenString)
			if err == nil && claims != nil && claims.SessionID != "" {
				c.Set("session_id", claims.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.NewString()
		token, err := utils.CreateSessionToken(sessionID, ttl)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Could not start a session")
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)
		c.Writer.Header().Set("X-Session-Token", token)
		c.Next()
	}
}
