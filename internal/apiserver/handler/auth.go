package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/apiserver/database"
	"github.com/kanri-app/kanri/internal/apiserver/middleware"
	"github.com/kanri-app/kanri/internal/auth/jwt"
	"github.com/kanri-app/kanri/internal/common/dto"
	"github.com/kanri-app/kanri/internal/i18n"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 10
	minPasswordLength = 8
	defaultRoleName   = "user"
	adminRoleName     = "admin"
)

// Login handles user authentication. Every failure path returns the
// same generic message so callers cannot probe which emails exist.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.loginFail(c)
		return
	}
	if req.Email == "" || req.Password == "" {
		h.loginFail(c)
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.loginFail(c)
			return
		}
		h.logger.Error("failed to get user for login", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	// Accounts provisioned without a password can never log in.
	if user.Password == "" {
		h.loginFail(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		h.loginFail(c)
		return
	}

	token, err := h.jwtService.GenerateToken(claimsForUser(user))
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.recordLogin("success")
	h.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	i18n.RespondOK(c, i18n.SuccessLogin, nil, gin.H{
		"token": token,
		"user":  userInfo(user),
	})
}

// Register handles self-registration. New accounts get the default role
// unless an administrator session assigns one explicitly.
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrorRegisterRequiredFields)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		i18n.RespondWithError(c, i18n.ErrorRegisterRequiredFields)
		return
	}
	if len(req.Password) < minPasswordLength {
		i18n.RespondWithError(c, i18n.ErrorPasswordTooShort)
		return
	}

	if _, err := h.db.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		i18n.RespondWithError(c, i18n.ErrorEmailRegistered)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("failed to check email", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	var role *database.Role
	if req.RoleID != "" {
		// Only an administrator session may assign a role at registration.
		claims := h.sessionClaims(c)
		if claims == nil {
			i18n.RespondWithError(c, i18n.ErrUnauthorized)
			return
		}
		if claims.Role == nil || claims.Role.Name != adminRoleName {
			i18n.RespondWithError(c, i18n.ErrForbidden)
			return
		}
		r, err := h.db.GetRoleByID(c.Request.Context(), req.RoleID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				i18n.RespondWithError(c, i18n.ErrorRoleMissing)
				return
			}
			h.logger.Error("failed to get role", zap.Error(err))
			i18n.RespondWithError(c, i18n.ErrInternalServer)
			return
		}
		role = r
	} else {
		r, err := h.db.GetRoleByName(c.Request.Context(), defaultRoleName)
		if err != nil {
			h.logger.Error("default role missing", zap.Error(err))
			i18n.RespondWithError(c, i18n.ErrInternalServer)
			return
		}
		role = r
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
		RoleID:   &role.ID,
		Role:     role,
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", role.Name))

	c.JSON(http.StatusCreated, gin.H{"user": userInfo(user)})
}

// ChangePassword lets an authenticated user replace their password
// after verifying the current one.
func (h *Handler) ChangePassword(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrorPasswordRequiredFields)
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		i18n.RespondWithError(c, i18n.ErrorPasswordRequiredFields)
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		i18n.RespondWithError(c, i18n.ErrorPasswordTooShort)
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorUserNotFound)
			return
		}
		h.logger.Error("failed to get user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		i18n.RespondWithError(c, i18n.ErrorCurrentPasswordInvalid)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	user.Password = string(hashed)
	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		h.logger.Error("failed to update password", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("password changed", zap.String("user_id", user.ID))

	i18n.RespondOK(c, i18n.SuccessPasswordChanged, nil, nil)
}

// GetUserInfo returns the authenticated user's identity from a fresh
// database read, along with a reissued token so the session picks up
// role and organization changes made since login.
func (h *Handler) GetUserInfo(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorUserNotFound)
			return
		}
		h.logger.Error("failed to get user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	token, err := h.jwtService.GenerateToken(claimsForUser(user))
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userInfo(user),
	})
}

// loginFail records a failed attempt and sends the generic
// invalid-credentials response.
func (h *Handler) loginFail(c *gin.Context) {
	h.recordLogin("failure")
	i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
}

// sessionClaims validates the Authorization header when present. It is
// used by routes that are public but behave differently for an
// authenticated caller. Returns nil for anonymous or invalid sessions.
func (h *Handler) sessionClaims(c *gin.Context) *jwt.Claims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}
	claims, err := h.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil
	}
	return claims
}

// claimsForUser snapshots the user's role, company and department into
// token claims. The copies are taken at issuance and do not track later
// edits.
func claimsForUser(user *database.User) *jwt.Claims {
	claims := &jwt.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
	if user.Role != nil {
		claims.Role = &jwt.RoleSnapshot{
			ID:          user.Role.ID,
			Name:        user.Role.Name,
			Permissions: user.Role.Permissions,
		}
	}
	if user.Company != nil {
		claims.Company = &jwt.OrgSnapshot{ID: user.Company.ID, Name: user.Company.Name}
	}
	if user.Department != nil {
		claims.Department = &jwt.OrgSnapshot{ID: user.Department.ID, Name: user.Department.Name}
	}
	return claims
}

// userInfo converts a user model into the identity payload shared by
// login, registration and /api/auth/me.
func userInfo(user *database.User) *dto.UserInfo {
	info := &dto.UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
	}
	if user.Role != nil {
		info.Role = &dto.RoleInfo{
			ID:          user.Role.ID,
			Name:        user.Role.Name,
			Permissions: user.Role.Permissions,
		}
	}
	if user.Company != nil {
		info.Company = &dto.EntityBrief{ID: user.Company.ID, Name: user.Company.Name}
	}
	if user.Department != nil {
		info.Department = &dto.EntityBrief{ID: user.Department.ID, Name: user.Department.Name}
	}
	return info
}
