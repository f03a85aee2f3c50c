package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/apiserver/database"
	"github.com/kanri-app/kanri/internal/auth/jwt"
	"github.com/kanri-app/kanri/internal/common/config"
	"go.uber.org/zap"
)

const testSecret = "this-is-a-very-long-secret-key-for-testing"

func newTestHandler(t *testing.T, db database.Database) (*Handler, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwtSvc, err := jwt.NewService(jwt.Config{SecretKey: testSecret, Duration: time.Hour})
	if err != nil {
		t.Fatalf("jwt service: %v", err)
	}
	return NewHandler(db, jwtSvc, &config.APIServerConfig{}, zap.NewNop(), nil), jwtSvc
}

// withClaims injects session claims the way the auth middleware does.
func withClaims(claims *jwt.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set("claims", claims)
		}
		c.Next()
	}
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSONWithToken(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return out
}

func strPtr(s string) *string { return &s }

func adminClaims(userID string) *jwt.Claims {
	return &jwt.Claims{
		UserID: userID,
		Email:  "admin@example.com",
		Role: &jwt.RoleSnapshot{
			ID:          "role-admin",
			Name:        "admin",
			Permissions: []string{"user:read", "user:create", "user:update", "user:delete"},
		},
	}
}
