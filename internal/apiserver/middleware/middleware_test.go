package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/auth/jwt"
	"github.com/stretchr/testify/assert"
)

func newJWTService(t *testing.T) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService(jwt.Config{
		SecretKey: "this-is-a-very-long-secret-key-for-testing",
		Duration:  time.Hour,
	})
	assert.NoError(t, err)
	return svc
}

func newGuardedRouter(svc *jwt.Service, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", JWTAuthMiddleware(svc), guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func issueToken(t *testing.T, svc *jwt.Service, perms []string) string {
	t.Helper()
	token, err := svc.GenerateToken(&jwt.Claims{
		UserID: "user-1",
		Email:  "a@example.com",
		Role:   &jwt.RoleSnapshot{ID: "role-1", Name: "user", Permissions: perms},
	})
	assert.NoError(t, err)
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newJWTService(t)
	r := newGuardedRouter(svc, RequirePermission("user:read"))

	// Missing token
	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Malformed header
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token
	w = get(r, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token signed with another key
	other, err := jwt.NewService(jwt.Config{
		SecretKey: "another-very-long-secret-key-for-testing!",
		Duration:  time.Hour,
	})
	assert.NoError(t, err)
	foreign, err := other.GenerateToken(&jwt.Claims{UserID: "user-1", Email: "a@example.com"})
	assert.NoError(t, err)
	w = get(r, foreign)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRunsBeforePermissionCheck(t *testing.T) {
	svc := newJWTService(t)
	r := newGuardedRouter(svc, RequirePermission("user:read"))

	// An unauthenticated caller missing the permission still gets 401.
	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermission(t *testing.T) {
	svc := newJWTService(t)
	r := newGuardedRouter(svc, RequirePermission("user:read"))

	// Lacking the permission
	w := get(r, issueToken(t, svc, []string{"role:read"}))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Holding it
	w = get(r, issueToken(t, svc, []string{"user:read", "role:read"}))
	assert.Equal(t, http.StatusOK, w.Code)

	// A token without a role carries no permissions
	noRole, err := svc.GenerateToken(&jwt.Claims{UserID: "user-1", Email: "a@example.com"})
	assert.NoError(t, err)
	w = get(r, noRole)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAny(t *testing.T) {
	svc := newJWTService(t)

	r := newGuardedRouter(svc, RequireAny("user:read", "user:update"))
	w := get(r, issueToken(t, svc, []string{"user:update"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, issueToken(t, svc, []string{"role:read"}))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Empty required set lets any authenticated session through.
	r = newGuardedRouter(svc, RequireAny())
	w = get(r, issueToken(t, svc, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	w = get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
