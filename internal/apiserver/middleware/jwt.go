package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/auth/jwt"
	"github.com/kanri-app/kanri/internal/i18n"
)

// JWTAuthMiddleware creates a middleware that validates JWT tokens.
// Requests without a valid token are rejected with 401 before any
// permission check runs.
func JWTAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.ErrUnauthorized.TranslateByRequest(c.Request)})
			return
		}

		// Check if the header has the Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.ErrUnauthorized.TranslateByRequest(c.Request)})
			return
		}

		// Validate the token
		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.ErrUnauthorized.TranslateByRequest(c.Request)})
			return
		}

		// Add the claims to the context
		c.Set("claims", claims)
		c.Next()
	}
}

// ClaimsFromContext returns the validated claims stored by
// JWTAuthMiddleware, or nil when the request is unauthenticated.
func ClaimsFromContext(c *gin.Context) *jwt.Claims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}
