package database

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// Database defines the methods for database operations.
type Database interface {
	// Close closes the database connection.
	Close() error

	// CreateUser creates a new user.
	CreateUser(ctx context.Context, user *User) error

	// GetUserByID retrieves a user by id with role, company and department loaded.
	GetUserByID(ctx context.Context, id string) (*User, error)

	// GetUserByEmail retrieves a user by unique email with role, company and department loaded.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, user *User) error

	// DeleteUser deletes a user by id.
	DeleteUser(ctx context.Context, id string) error

	// ListUsers retrieves all users ordered by creation time descending.
	ListUsers(ctx context.Context) ([]*User, error)

	// CountUsersByRole counts users referencing the given role.
	CountUsersByRole(ctx context.Context, roleID string) (int64, error)

	// CountUsersByCompany counts users referencing the given company.
	CountUsersByCompany(ctx context.Context, companyID string) (int64, error)

	// CreateRole creates a new role.
	CreateRole(ctx context.Context, role *Role) error

	// GetRoleByID retrieves a role by id.
	GetRoleByID(ctx context.Context, id string) (*Role, error)

	// GetRoleByName retrieves a role by unique name.
	GetRoleByName(ctx context.Context, name string) (*Role, error)

	// UpdateRole updates an existing role.
	UpdateRole(ctx context.Context, role *Role) error

	// DeleteRole deletes a role by id.
	DeleteRole(ctx context.Context, id string) error

	// ListRoles retrieves all roles ordered by name.
	ListRoles(ctx context.Context) ([]*Role, error)

	// CreateCompany creates a new company.
	CreateCompany(ctx context.Context, company *Company) error

	// GetCompanyByID retrieves a company by id.
	GetCompanyByID(ctx context.Context, id string) (*Company, error)

	// GetCompanyByName retrieves a company by unique name.
	GetCompanyByName(ctx context.Context, name string) (*Company, error)

	// UpdateCompany updates an existing company.
	UpdateCompany(ctx context.Context, company *Company) error

	// DeleteCompany deletes a company by id.
	DeleteCompany(ctx context.Context, id string) error

	// ListCompanies retrieves all companies ordered by name.
	ListCompanies(ctx context.Context) ([]*Company, error)

	// CreateDepartment creates a new department.
	CreateDepartment(ctx context.Context, department *Department) error

	// GetDepartmentByID retrieves a department by id with its company loaded.
	GetDepartmentByID(ctx context.Context, id string) (*Department, error)

	// FindDepartmentByName looks up a department by name within a company,
	// skipping excludeID when non-empty (used by updates to ignore self).
	FindDepartmentByName(ctx context.Context, companyID, name, excludeID string) (*Department, error)

	// UpdateDepartment updates an existing department.
	UpdateDepartment(ctx context.Context, department *Department) error

	// DeleteDepartment deletes a department by id.
	DeleteDepartment(ctx context.Context, id string) error

	// ListDepartments retrieves all departments with company summaries, ordered by name.
	ListDepartments(ctx context.Context) ([]*Department, error)

	// ListDepartmentsByCompany retrieves a company's departments ordered by name.
	ListDepartmentsByCompany(ctx context.Context, companyID string) ([]*Department, error)

	// CountDepartmentsByCompany counts departments belonging to the given company.
	CountDepartmentsByCompany(ctx context.Context, companyID string) (int64, error)
}
