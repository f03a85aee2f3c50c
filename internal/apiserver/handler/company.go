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

// ListCompanies returns all companies ordered by name. Any
// authenticated user may list companies; they back selection lists in
// the user and department forms.
func (h *Handler) ListCompanies(c *gin.Context) {
	companies, err := h.db.ListCompanies(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list companies", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// CreateCompany creates a company. Names are unique portal-wide.
func (h *Handler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrorCompanyNameRequired)
		return
	}
	if req.Name == "" {
		i18n.RespondWithError(c, i18n.ErrorCompanyNameRequired)
		return
	}

	if _, err := h.db.GetCompanyByName(c.Request.Context(), req.Name); err == nil {
		i18n.RespondWithError(c, i18n.ErrorCompanyNameExists)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.logger.Error("failed to check company name", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	company := &database.Company{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
	}

	if err := h.db.CreateCompany(c.Request.Context(), company); err != nil {
		h.logger.Error("failed to create company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("company created",
		zap.String("company_id", company.ID),
		zap.String("name", company.Name))

	c.JSON(http.StatusCreated, company)
}

// GetCompany returns a single company by id.
func (h *Handler) GetCompany(c *gin.Context) {
	company, err := h.db.GetCompanyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorCompanyNotFound)
			return
		}
		h.logger.Error("failed to get company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, company)
}

// UpdateCompany updates a company. Nil fields are left unchanged; a
// name change must not collide with another company.
func (h *Handler) UpdateCompany(c *gin.Context) {
	id := c.Param("id")

	company, err := h.db.GetCompanyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorCompanyNotFound)
			return
		}
		h.logger.Error("failed to get company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			i18n.RespondWithError(c, i18n.ErrorCompanyNameRequired)
			return
		}
		if *req.Name != company.Name {
			existing, err := h.db.GetCompanyByName(c.Request.Context(), *req.Name)
			if err == nil && existing.ID != id {
				i18n.RespondWithError(c, i18n.ErrorCompanyNameExists)
				return
			}
			if err != nil && !errors.Is(err, database.ErrNotFound) {
				h.logger.Error("failed to check company name", zap.Error(err))
				i18n.RespondWithError(c, i18n.ErrInternalServer)
				return
			}
			company.Name = *req.Name
		}
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Website != nil {
		company.Website = *req.Website
	}

	if err := h.db.UpdateCompany(c.Request.Context(), company); err != nil {
		h.logger.Error("failed to update company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany deletes a company. A company still referenced by
// departments or users cannot be deleted.
func (h *Handler) DeleteCompany(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.db.GetCompanyByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorCompanyNotFound)
			return
		}
		h.logger.Error("failed to get company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	deptCount, err := h.db.CountDepartmentsByCompany(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to count company departments", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	userCount, err := h.db.CountUsersByCompany(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to count company users", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	if deptCount > 0 || userCount > 0 {
		i18n.RespondWithError(c, i18n.ErrorCompanyInUse)
		return
	}

	if err := h.db.DeleteCompany(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	h.logger.Info("company deleted", zap.String("company_id", id))

	i18n.RespondOK(c, i18n.SuccessCompanyDeleted, nil, nil)
}

// ListCompanyDepartments returns the departments belonging to one
// company, ordered by name.
func (h *Handler) ListCompanyDepartments(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.db.GetCompanyByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			i18n.RespondWithError(c, i18n.ErrorCompanyNotFound)
			return
		}
		h.logger.Error("failed to get company", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	departments, err := h.db.ListDepartmentsByCompany(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to list departments", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, departments)
}
