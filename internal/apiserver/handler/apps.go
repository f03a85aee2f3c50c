package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/apiserver/middleware"
	"github.com/kanri-app/kanri/internal/apps"
	"github.com/kanri-app/kanri/internal/i18n"
)

// ListApps returns the launcher applications the session's permission
// snapshot grants access to.
func (h *Handler) ListApps(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"apps": apps.FilterByPermissions(claims.Permissions()),
	})
}
