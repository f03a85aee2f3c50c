package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kanri-app/kanri/internal/apiserver/database"
	"github.com/kanri-app/kanri/internal/common/dto"
	"github.com/kanri-app/kanri/internal/i18n"
	"go.uber.org/zap"
)

// ListDepartments returns all departments with their company summary,
// ordered by name.
func (h *Handler) ListDepartments(c *gin.Context) {
	departments, err := h.db.ListDepartments(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list departments", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// CreateDepartment creates a department inside a company. Names are
// unique within the company, not portal-wide.
func (h *Handler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrorDepartmentNameRequired)
		return
	}
	if req.Name == "" {
		i18n.RespondWithError(c, i18n.ErrorDepartmentNameRequired)
		return
	}
	if req.CompanyID == "" {
		i18n.RespondWithError(c, i18n.ErrorDepartmentCompanyRequired)
		return
	}

	if _, err := h.db.GetCompanyByID(c.Request.Context(), req.CompanyID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorCompanyNotFound)
			return
		}
		h.logger.Error("failed to get company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	if _, err := h.db.FindDepartmentByName(c.Request.Context(), req.CompanyID, req.Name, ""); err == nil {
		i18n.RespondWithError(c, i18n.ErrorDepartmentNameExists)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("failed to check department name", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	department := &database.Department{
		Name:        req.Name,
		Description: req.Description,
		CompanyID:   req.CompanyID,
	}

	if err := h.db.CreateDepartment(c.Request.Context(), department); err != nil {
		h.logger.Error("failed to create department", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	created, err := h.db.GetDepartmentByID(c.Request.Context(), department.ID)
	if err != nil {
		h.logger.Error("failed to reload department", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("department created",
		zap.String("department_id", created.ID),
		zap.String("company_id", created.CompanyID),
		zap.String("name", created.Name))

	c.JSON(http.StatusCreated, created)
}

// GetDepartment returns a single department by id.
func (h *Handler) GetDepartment(c *gin.Context) {
	department, err := h.db.GetDepartmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorDepartmentNotFound)
			return
		}
		h.logger.Error("failed to get department", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, department)
}

// UpdateDepartment updates a department, possibly moving it to another
// company. Name and company are re-validated; the same-company
// uniqueness check skips the department itself.
func (h *Handler) UpdateDepartment(c *gin.Context) {
	id := c.Param("id")

	department, err := h.db.GetDepartmentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorDepartmentNotFound)
			return
		}
		h.logger.Error("failed to get department", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrorDepartmentNameRequired)
		return
	}
	if req.Name == "" {
		i18n.RespondWithError(c, i18n.ErrorDepartmentNameRequired)
		return
	}
	if req.CompanyID == "" {
		i18n.RespondWithError(c, i18n.ErrorDepartmentCompanyRequired)
		return
	}

	if _, err := h.db.GetCompanyByID(c.Request.Context(), req.CompanyID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorCompanyNotFound)
			return
		}
		h.logger.Error("failed to get company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	if _, err := h.db.FindDepartmentByName(c.Request.Context(), req.CompanyID, req.Name, id); err == nil {
		i18n.RespondWithError(c, i18n.ErrorDepartmentNameExists)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("failed to check department name", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	department.Name = req.Name
	department.CompanyID = req.CompanyID
	department.Company = nil
	if req.Description != nil {
		department.Description = *req.Description
	}

	if err := h.db.UpdateDepartment(c.Request.Context(), department); err != nil {
		h.logger.Error("failed to update department", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	updated, err := h.db.GetDepartmentByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to reload department", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteDepartment deletes a department by id.
func (h *Handler) DeleteDepartment(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.db.GetDepartmentByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorDepartmentNotFound)
			return
		}
		h.logger.Error("failed to get department", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	if err := h.db.DeleteDepartment(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete department", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("department deleted", zap.String("department_id", id))

	i18n.RespondOK(c, i18n.SuccessDepartmentDeleted, nil, nil)
}
