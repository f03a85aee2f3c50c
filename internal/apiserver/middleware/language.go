package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/common/cnst"
	"github.com/kanri-app/kanri/internal/i18n"
)

// Language resolves the request's language preference from the X-Lang
// and Accept-Language headers and stores it in the context for the
// translation layer.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(cnst.XLang, i18n.LanguageFromRequest(c.Request))
		c.Next()
	}
}
