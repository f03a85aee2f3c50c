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

func TestCreateCompany(t *testing.T) {
	db := &fakeDB{
		companies: []*database.Company{{ID: "comp-1", Name: "株式会社テスト"}},
	}
	h, _ := newTestHandler(t, db)

	r := gin.New()
	r.POST("/api/companies", withClaims(adminClaims("admin-1")), h.CreateCompany)

	// Name required
	w := doJSON(r, http.MethodPost, "/api/companies", dto.CreateCompanyRequest{Description: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate name
	w = doJSON(r, http.MethodPost, "/api/companies", dto.CreateCompanyRequest{Name: "株式会社テスト"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Success
	w = doJSON(r, http.MethodPost, "/api/companies", dto.CreateCompanyRequest{
		Name:    "株式会社サンプル",
		Email:   "info@sample.example.com",
		Website: "https://sample.example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	created, err := db.GetCompanyByName(context.Background(), "株式会社サンプル")
	assert.NoError(t, err)
	assert.Equal(t, "info@sample.example.com", created.Email)
}

func TestUpdateCompany(t *testing.T) {
	db := &fakeDB{
		companies: []*database.Company{
			{ID: "comp-1", Name: "株式会社テスト"},
			{ID: "comp-2", Name: "株式会社サンプル"},
		},
	}
	h, _ := newTestHandler(t, db)

	r := gin.New()
	r.PUT("/api/companies/:id", withClaims(adminClaims("admin-1")), h.UpdateCompany)

	// Unknown company
	w := doJSON(r, http.MethodPut, "/api/companies/comp-nope", dto.UpdateCompanyRequest{Name: strPtr("X")})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Rename onto another company's name
	w = doJSON(r, http.MethodPut, "/api/companies/comp-1", dto.UpdateCompanyRequest{Name: strPtr("株式会社サンプル")})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Keeping your own name is fine
	w = doJSON(r, http.MethodPut, "/api/companies/comp-1", dto.UpdateCompanyRequest{
		Name:    strPtr("株式会社テスト"),
		Address: strPtr("東京都千代田区1-1-1"),
	})
	assert.Equal(t, http.StatusOK, w.Code)
	updated, err := db.GetCompanyByID(context.Background(), "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, "東京都千代田区1-1-1", updated.Address)

	// Empty name is rejected
	w = doJSON(r, http.MethodPut, "/api/companies/comp-1", dto.UpdateCompanyRequest{Name: strPtr("")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCompany_InUse(t *testing.T) {
	db := &fakeDB{
		companies: []*database.Company{
			{ID: "comp-1", Name: "A"},
			{ID: "comp-2", Name: "B"},
			{ID: "comp-3", Name: "C"},
		},
		departments: []*database.Department{
			{ID: "dept-1", Name: "開発部", CompanyID: "comp-1"},
		},
		users: []*database.User{
			{ID: "user-1", Email: "a@example.com", CompanyID: strPtr("comp-2")},
		},
	}
	h, _ := newTestHandler(t, db)

	r := gin.New()
	r.DELETE("/api/companies/:id", withClaims(adminClaims("admin-1")), h.DeleteCompany)

	// Referenced by a department
	w := doJSON(r, http.MethodDelete, "/api/companies/comp-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Referenced by a user
	w = doJSON(r, http.MethodDelete, "/api/companies/comp-2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unreferenced company deletes fine
	w = doJSON(r, http.MethodDelete, "/api/companies/comp-3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, err := db.GetCompanyByID(context.Background(), "comp-3")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListCompanyDepartments(t *testing.T) {
	db := &fakeDB{
		companies: []*database.Company{{ID: "comp-1", Name: "A"}},
		departments: []*database.Department{
			{ID: "dept-1", Name: "開発部", CompanyID: "comp-1"},
			{ID: "dept-2", Name: "営業部", CompanyID: "comp-2"},
		},
	}
	h, _ := newTestHandler(t, db)

	r := gin.New()
	r.GET("/api/companies/:id/departments", withClaims(adminClaims("admin-1")), h.ListCompanyDepartments)

	// Unknown company is a 404, not an empty list
	w := doJSON(r, http.MethodGet, "/api/companies/comp-nope/departments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/companies/comp-1/departments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "開発部")
	assert.NotContains(t, w.Body.String(), "営業部")
}
