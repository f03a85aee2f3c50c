package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/auth/permission"
	"github.com/kanri-app/kanri/internal/i18n"
)

// RequirePermission guards a route with a single permission. The
// session's role snapshot must carry the permission or the request is
// rejected with 403. A missing session is a 401, never a 403.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.ErrUnauthorized.TranslateByRequest(c.Request)})
			return
		}
		if !permission.Has(claims.Permissions(), perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": i18n.ErrForbidden.TranslateByRequest(c.Request)})
			return
		}
		c.Next()
	}
}

// RequireAny guards a route with a set of alternatives. Holding any one
// of them grants access. An empty set allows every authenticated user.
func RequireAny(perms ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.ErrUnauthorized.TranslateByRequest(c.Request)})
			return
		}
		if !permission.HasAny(claims.Permissions(), perms...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": i18n.ErrForbidden.TranslateByRequest(c.Request)})
			return
		}
		c.Next()
	}
}
