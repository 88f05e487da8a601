package middleware

import (
	"net/http"
	"strings"

	"cartly-be/internal/jwt"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the authenticated user id
// is stored for downstream handlers.
const ContextUserID = "userID"

// AuthMiddleware rejects requests without a valid bearer token and injects
// the token's user id into the request context. No handler runs on failure.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
