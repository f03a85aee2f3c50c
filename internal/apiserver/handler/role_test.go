package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/apiserver/database"
	"github.com/kanri-app/kanri/internal/common/dto"
	"github.com/stretchr/testify/assert"
)

func TestCreateRole(t *testing.T) {
	db := &fakeDB{
		roles: []*database.Role{{ID: "role-1", Name: "admin"}},
	}
	h, _ := newTestHandler(t, db)

	r := gin.New()
	r.POST("/api/roles", withClaims(adminClaims("admin-1")), h.CreateRole)

	// Name required
	w := doJSON(r, http.MethodPost, "/api/roles", dto.CreateRoleRequest{Description: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate name
	w = doJSON(r, http.MethodPost, "/api/roles", dto.CreateRoleRequest{Name: "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Success, nil permissions stored as empty set
	w = doJSON(r, http.MethodPost, "/api/roles", dto.CreateRoleRequest{Name: "editor"})
	assert.Equal(t, http.StatusCreated, w.Code)
	created, err := db.GetRoleByName(context.Background(), "editor")
	assert.NoError(t, err)
	assert.NotNil(t, created.Permissions)
	assert.Empty(t, created.Permissions)
}

func TestUpdateRole(t *testing.T) {
	db := &fakeDB{
		roles: []*database.Role{
			{ID: "role-1", Name: "admin"},
			{ID: "role-2", Name: "editor", Permissions: []string{"user:read"}},
		},
	}
	h, _ := newTestHandler(t, db)

	r := gin.New()
	r.PUT("/api/roles/:id", withClaims(adminClaims("admin-1")), h.UpdateRole)

	// Unknown role
	w := doJSON(r, http.MethodPut, "/api/roles/role-nope", dto.UpdateRoleRequest{Name: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Rename onto an existing name
	w = doJSON(r, http.MethodPut, "/api/roles/role-2", dto.UpdateRoleRequest{Name: "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Permission set replacement
	w = doJSON(r, http.MethodPut, "/api/roles/role-2", dto.UpdateRoleRequest{
		Permissions: []string{"user:read", "user:update"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	updated, err := db.GetRoleByID(context.Background(), "role-2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"user:read", "user:update"}, updated.Permissions)
	assert.Equal(t, "editor", updated.Name)
}

func TestDeleteRole_InUse(t *testing.T) {
	db := &fakeDB{
		roles: []*database.Role{
			{ID: "role-1", Name: "editor"},
			{ID: "role-2", Name: "unused"},
		},
		users: []*database.User{
			{ID: "user-1", Email: "a@example.com", RoleID: strPtr("role-1")},
		},
	}
	h, _ := newTestHandler(t, db)

	r := gin.New()
	r.DELETE("/api/roles/:id", withClaims(adminClaims("admin-1")), h.DeleteRole)

	// Referenced role cannot be deleted
	w := doJSON(r, http.MethodDelete, "/api/roles/role-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, err := db.GetRoleByID(context.Background(), "role-1")
	assert.NoError(t, err)

	// Unreferenced role deletes fine
	w = doJSON(r, http.MethodDelete, "/api/roles/role-2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, err = db.GetRoleByID(context.Background(), "role-2")
	assert.ErrorIs(t, err, database.ErrNotFound)

	// Unknown role
	w = doJSON(r, http.MethodDelete, "/api/roles/role-nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPermissions(t *testing.T) {
	h, _ := newTestHandler(t, &fakeDB{})

	r := gin.New()
	r.GET("/api/permissions", withClaims(adminClaims("admin-1")), h.ListPermissions)

	w := doJSON(r, http.MethodGet, "/api/permissions", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user:create")
	assert.Contains(t, w.Body.String(), "ユーザー管理")
}
