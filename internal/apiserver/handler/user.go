package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/apiserver/database"
	"github.com/kanri-app/kanri/internal/apiserver/middleware"
	"github.com/kanri-app/kanri/internal/common/dto"
	"github.com/kanri-app/kanri/internal/i18n"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ListUsers returns all users with their role, company and department
// summaries, newest first.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser creates a user with an assigned role and optional company
// and department. A department always requires a matching company.
func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrorUserRequiredFields)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.RoleID == "" {
		i18n.RespondWithError(c, i18n.ErrorUserRequiredFields)
		return
	}
	if len(req.Password) < minPasswordLength {
		i18n.RespondWithError(c, i18n.ErrorPasswordTooShort)
		return
	}

	if _, err := h.db.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		i18n.RespondWithError(c, i18n.ErrorUserEmailExists)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("failed to check email", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	if _, err := h.db.GetRoleByID(c.Request.Context(), req.RoleID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorRoleMissing)
			return
		}
		h.logger.Error("failed to get role", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	if req.CompanyID != "" {
		if _, err := h.db.GetCompanyByID(c.Request.Context(), req.CompanyID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				i18n.RespondWithError(c, i18n.ErrorCompanyMissing)
				return
			}
			h.logger.Error("failed to get company", zap.Error(err))
			i18n.RespondWithError(c, i18n.ErrInternalServer)
			return
		}
	}

	if req.DepartmentID != "" {
		dept, err := h.db.GetDepartmentByID(c.Request.Context(), req.DepartmentID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				i18n.RespondWithError(c, i18n.ErrorDepartmentMissing)
				return
			}
			h.logger.Error("failed to get department", zap.Error(err))
			i18n.RespondWithError(c, i18n.ErrInternalServer)
			return
		}
		if req.CompanyID == "" {
			i18n.RespondWithError(c, i18n.ErrorDepartmentWithoutCompany)
			return
		}
		if dept.CompanyID != req.CompanyID {
			i18n.RespondWithError(c, i18n.ErrorDepartmentCompanyMismatch)
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	user := &database.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		RoleID:   &req.RoleID,
	}
	if req.CompanyID != "" {
		user.CompanyID = &req.CompanyID
	}
	if req.DepartmentID != "" {
		user.DepartmentID = &req.DepartmentID
	}

	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	created, err := h.db.GetUserByID(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to reload user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("user created",
		zap.String("user_id", created.ID),
		zap.String("email", created.Email))

	c.JSON(http.StatusCreated, created)
}

// GetUser returns a single user by id.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.db.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorUserNotFound)
			return
		}
		h.logger.Error("failed to get user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser updates a user's name, email or role. Omitted fields are
// left unchanged; an empty roleId clears the role.
func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorUserNotFound)
			return
		}
		h.logger.Error("failed to get user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}

	if req.Email != nil && *req.Email != "" && *req.Email != user.Email {
		existing, err := h.db.GetUserByEmail(c.Request.Context(), *req.Email)
		if err == nil && existing.ID != id {
			i18n.RespondWithError(c, i18n.ErrorUserEmailExists)
			return
		}
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			h.logger.Error("failed to check email", zap.Error(err))
			i18n.RespondWithError(c, i18n.ErrInternalServer)
			return
		}
		user.Email = *req.Email
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.RoleID != nil {
		if *req.RoleID == "" {
			user.RoleID = nil
			user.Role = nil
		} else {
			role, err := h.db.GetRoleByID(c.Request.Context(), *req.RoleID)
			if err != nil {
				if errors.Is(err, database.ErrNotFound) {
					i18n.RespondWithError(c, i18n.ErrorRoleMissing)
					return
				}
				h.logger.Error("failed to get role", zap.Error(err))
				i18n.RespondWithError(c, i18n.ErrInternalServer)
				return
			}
			user.RoleID = &role.ID
			user.Role = role
		}
	}

	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		h.logger.Error("failed to update user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	updated, err := h.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to reload user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteUser deletes a user. Users cannot delete their own account.
func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}
	if claims.UserID == id {
		i18n.RespondWithError(c, i18n.ErrorUserSelfDelete)
		return
	}

	if _, err := h.db.GetUserByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorUserNotFound)
			return
		}
		h.logger.Error("failed to get user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	if err := h.db.DeleteUser(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("user deleted", zap.String("user_id", id))

	i18n.RespondOK(c, i18n.SuccessUserDeleted, nil, nil)
}
