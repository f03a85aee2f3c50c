package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/apiserver/database"
	"github.com/kanri-app/kanri/internal/auth/permission"
	"github.com/kanri-app/kanri/internal/common/dto"
	"github.com/kanri-app/kanri/internal/i18n"
	"go.uber.org/zap"
)

// ListRoles returns all roles ordered by name.
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.db.ListRoles(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list roles", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// ListPermissions returns the permission catalog grouped for the role
// editor.
func (h *Handler) ListPermissions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": permission.Groups})
}

// CreateRole creates a role with its permission set.
func (h *Handler) CreateRole(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrorRoleNameRequired)
		return
	}
	if req.Name == "" {
		i18n.RespondWithError(c, i18n.ErrorRoleNameRequired)
		return
	}

	if _, err := h.db.GetRoleByName(c.Request.Context(), req.Name); err == nil {
		i18n.RespondWithError(c, i18n.ErrorRoleNameExists)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("failed to check role name", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	role := &database.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	}
	if role.Permissions == nil {
		role.Permissions = []string{}
	}

	if err := h.db.CreateRole(c.Request.Context(), role); err != nil {
		h.logger.Error("failed to create role", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("role created",
		zap.String("role_id", role.ID),
		zap.String("name", role.Name))

	c.JSON(http.StatusCreated, role)
}

// GetRole returns a single role by id.
func (h *Handler) GetRole(c *gin.Context) {
	role, err := h.db.GetRoleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorRoleNotFound)
			return
		}
		h.logger.Error("failed to get role", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, role)
}

// UpdateRole updates a role's name, description or permission set.
// Sessions issued before the change keep their old snapshot until
// refreshed.
func (h *Handler) UpdateRole(c *gin.Context) {
	id := c.Param("id")

	role, err := h.db.GetRoleByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorRoleNotFound)
			return
		}
		h.logger.Error("failed to get role", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}

	if req.Name != "" && req.Name != role.Name {
		if _, err := h.db.GetRoleByName(c.Request.Context(), req.Name); err == nil {
			i18n.RespondWithError(c, i18n.ErrorRoleNameExists)
			return
		} else if !errors.Is(err, database.ErrNotFound) {
			h.logger.Error("failed to check role name", zap.Error(err))
			i18n.RespondWithError(c, i18n.ErrInternalServer)
			return
		}
		role.Name = req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.Permissions != nil {
		role.Permissions = req.Permissions
	}

	if err := h.db.UpdateRole(c.Request.Context(), role); err != nil {
		h.logger.Error("failed to update role", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, role)
}

// DeleteRole deletes a role. A role still assigned to any user cannot
// be deleted.
func (h *Handler) DeleteRole(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.db.GetRoleByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorRoleNotFound)
			return
		}
		h.logger.Error("failed to get role", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	count, err := h.db.CountUsersByRole(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to count role users", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	if count > 0 {
		i18n.RespondWithError(c, i18n.ErrorRoleInUse)
		return
	}

	if err := h.db.DeleteRole(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete role", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("role deleted", zap.String("role_id", id))

	i18n.RespondOK(c, i18n.SuccessRoleDeleted, nil, nil)
}
