package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/kanri-app/kanri/internal/common/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// MySQL implements the Database interface using MySQL
type MySQL struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// NewMySQL creates a new MySQL instance
func NewMySQL(cfg *config.DatabaseConfig) (Database, error) {
	db := &MySQL{
		cfg: cfg,
	}

	gormDB, err := gorm.Open(mysql.Open(db.cfg.GetDSN()), &gorm.Config{})
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
func (db *MySQL) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *MySQL) CreateUser(ctx context.Context, user *User) error {
	return db.db.WithContext(ctx).Create(user).Error
}

func (db *MySQL) GetUserByID(ctx context.Context, id string) (*User, error) {
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

func (db *MySQL) GetUserByEmail(ctx context.Context, email string) (*User, error) {
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

func (db *MySQL) UpdateUser(ctx context.Context, user *User) error {
	return db.db.WithContext(ctx).Save(user).Error
}

func (db *MySQL) DeleteUser(ctx context.Context, id string) error {
	return db.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

func (db *MySQL) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := db.db.WithContext(ctx).
		Preload("Role").Preload("Company").Preload("Department").
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

func (db *MySQL) CountUsersByRole(ctx context.Context, roleID string) (int64, error) {
	var count int64
	err := db.db.WithContext(ctx).
		Model(&User{}).
		Where("role_id = ?", roleID).
		Count(&count).Error
	return count, err
}

func (db *MySQL) CountUsersByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := db.db.WithContext(ctx).
		Model(&User{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}

func (db *MySQL) CreateRole(ctx context.Context, role *Role) error {
	return db.db.WithContext(ctx).Create(role).Error
}

func (db *MySQL) GetRoleByID(ctx context.Context, id string) (*Role, error) {
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

func (db *MySQL) GetRoleByName(ctx context.Context, name string) (*Role, error) {
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

func (db *MySQL) UpdateRole(ctx context.Context, role *Role) error {
	return db.db.WithContext(ctx).Save(role).Error
}

func (db *MySQL) DeleteRole(ctx context.Context, id string) error {
	return db.db.WithContext(ctx).Delete(&Role{}, "id = ?", id).Error
}

func (db *MySQL) ListRoles(ctx context.Context) ([]*Role, error) {
	var roles []*Role
	err := db.db.WithContext(ctx).Order("name asc").Find(&roles).Error
	return roles, err
}

func (db *MySQL) CreateCompany(ctx context.Context, company *Company) error {
	return db.db.WithContext(ctx).Create(company).Error
}

func (db *MySQL) GetCompanyByID(ctx context.Context, id string) (*Company, error) {
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

func (db *MySQL) GetCompanyByName(ctx context.Context, name string) (*Company, error) {
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

func (db *MySQL) UpdateCompany(ctx context.Context, company *Company) error {
	return db.db.WithContext(ctx).Save(company).Error
}

func (db *MySQL) DeleteCompany(ctx context.Context, id string) error {
	return db.db.WithContext(ctx).Delete(&Company{}, "id = ?", id).Error
}

func (db *MySQL) ListCompanies(ctx context.Context) ([]*Company, error) {
	var companies []*Company
	err := db.db.WithContext(ctx).Order("name asc").Find(&companies).Error
	return companies, err
}

func (db *MySQL) CreateDepartment(ctx context.Context, department *Department) error {
	return db.db.WithContext(ctx).Create(department).Error
}

func (db *MySQL) GetDepartmentByID(ctx context.Context, id string) (*Department, error) {
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

func (db *MySQL) FindDepartmentByName(ctx context.Context, companyID, name, excludeID string) (*Department, error) {
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

func (db *MySQL) UpdateDepartment(ctx context.Context, department *Department) error {
	return db.db.WithContext(ctx).Save(department).Error
}

func (db *MySQL) DeleteDepartment(ctx context.Context, id string) error {
	return db.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}

func (db *MySQL) ListDepartments(ctx context.Context) ([]*Department, error) {
	var departments []*Department
	err := db.db.WithContext(ctx).
		Preload("Company").
		Order("name asc").
		Find(&departments).Error
	return departments, err
}

func (db *MySQL) ListDepartmentsByCompany(ctx context.Context, companyID string) ([]*Department, error) {
	var departments []*Department
	err := db.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name asc").
		Find(&departments).Error
	return departments, err
}

func (db *MySQL) CountDepartmentsByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := db.db.WithContext(ctx).
		Model(&Department{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}
