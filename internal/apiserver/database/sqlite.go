package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kanri-app/kanri/internal/common/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// SQLite implements the Database interface using SQLite
type SQLite struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// NewSQLite creates a new SQLite instance
func NewSQLite(cfg *config.DatabaseConfig) (Database, error) {
	db := &SQLite{
		cfg: cfg,
	}

	dir := filepath.Dir(db.cfg.DBName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	gormDB, err := gorm.Open(sqlite.Open(db.cfg.DBName), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gormDB.AutoMigrate(&Role{}, &Company{}, &Department{}, &User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db.db = gormDB
	return db, nil
}

// Close closes the database connection
func (db *SQLite) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *SQLite) CreateUser(ctx context.Context, user *User) error {
	return db.db.WithContext(ctx).Create(user).Error
}

func (db *SQLite) GetUserByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := db.db.WithContext(ctx).
		Preload("Role").Preload("Company").Preload("Department").
		Where("id = ?", id).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *SQLite) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := db.db.WithContext(ctx).
		Preload("Role").Preload("Company").Preload("Department").
		Where("email = ?", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *SQLite) UpdateUser(ctx context.Context, user *User) error {
	return db.db.WithContext(ctx).Save(user).Error
}

func (db *SQLite) DeleteUser(ctx context.Context, id string) error {
	return db.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

func (db *SQLite) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := db.db.WithContext(ctx).
		Preload("Role").Preload("Company").Preload("Department").
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

func (db *SQLite) CountUsersByRole(ctx context.Context, roleID string) (int64, error) {
	var count int64
	err := db.db.WithContext(ctx).
		Model(&User{}).
		Where("role_id = ?", roleID).
		Count(&count).Error
	return count, err
}

func (db *SQLite) CountUsersByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := db.db.WithContext(ctx).
		Model(&User{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}

func (db *SQLite) CreateRole(ctx context.Context, role *Role) error {
	return db.db.WithContext(ctx).Create(role).Error
}

func (db *SQLite) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	var role Role
	err := db.db.WithContext(ctx).Where("id = ?", id).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (db *SQLite) GetRoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := db.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (db *SQLite) UpdateRole(ctx context.Context, role *Role) error {
	return db.db.WithContext(ctx).Save(role).Error
}

func (db *SQLite) DeleteRole(ctx context.Context, id string) error {
	return db.db.WithContext(ctx).Delete(&Role{}, "id = ?", id).Error
}

func (db *SQLite) ListRoles(ctx context.Context) ([]*Role, error) {
	var roles []*Role
	err := db.db.WithContext(ctx).Order("name asc").Find(&roles).Error
	return roles, err
}

func (db *SQLite) CreateCompany(ctx context.Context, company *Company) error {
	return db.db.WithContext(ctx).Create(company).Error
}

func (db *SQLite) GetCompanyByID(ctx context.Context, id string) (*Company, error) {
	var company Company
	err := db.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (db *SQLite) GetCompanyByName(ctx context.Context, name string) (*Company, error) {
	var company Company
	err := db.db.WithContext(ctx).Where("name = ?", name).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (db *SQLite) UpdateCompany(ctx context.Context, company *Company) error {
	return db.db.WithContext(ctx).Save(company).Error
}

func (db *SQLite) DeleteCompany(ctx context.Context, id string) error {
	return db.db.WithContext(ctx).Delete(&Company{}, "id = ?", id).Error
}

func (db *SQLite) ListCompanies(ctx context.Context) ([]*Company, error) {
	var companies []*Company
	err := db.db.WithContext(ctx).Order("name asc").Find(&companies).Error
	return companies, err
}

func (db *SQLite) CreateDepartment(ctx context.Context, department *Department) error {
	return db.db.WithContext(ctx).Create(department).Error
}

func (db *SQLite) GetDepartmentByID(ctx context.Context, id string) (*Department, error) {
	var department Department
	err := db.db.WithContext(ctx).
		Preload("Company").
		Where("id = ?", id).
		First(&department).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (db *SQLite) FindDepartmentByName(ctx context.Context, companyID, name, excludeID string) (*Department, error) {
	var department Department
	q := db.db.WithContext(ctx).Where("company_id = ? AND name = ?", companyID, name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&department).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (db *SQLite) UpdateDepartment(ctx context.Context, department *Department) error {
	return db.db.WithContext(ctx).Save(department).Error
}

func (db *SQLite) DeleteDepartment(ctx context.Context, id string) error {
	return db.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}

func (db *SQLite) ListDepartments(ctx context.Context) ([]*Department, error) {
	var departments []*Department
	err := db.db.WithContext(ctx).
		Preload("Company").
		Order("name asc").
		Find(&departments).Error
	return departments, err
}

func (db *SQLite) ListDepartmentsByCompany(ctx context.Context, companyID string) ([]*Department, error) {
	var departments []*Department
	err := db.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name asc").
		Find(&departments).Error
	return departments, err
}

func (db *SQLite) CountDepartmentsByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := db.db.WithContext(ctx).
		Model(&Department{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}
