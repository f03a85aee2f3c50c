package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/kanri-app/kanri/internal/apiserver/database"
)

// fakeDB is an in-memory Database used by the handler tests.
type fakeDB struct {
	users       []*database.User
	roles       []*database.Role
	companies   []*database.Company
	departments []*database.Department
}

func (m *fakeDB) Close() error { return nil }

func (m *fakeDB) roleByID(id string) *database.Role {
	for _, r := range m.roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (m *fakeDB) companyByID(id string) *database.Company {
	for _, c := range m.companies {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *fakeDB) departmentByID(id string) *database.Department {
	for _, d := range m.departments {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// loadUser emulates association preloading.
func (m *fakeDB) loadUser(u *database.User) *database.User {
	out := *u
	if u.RoleID != nil {
		out.Role = m.roleByID(*u.RoleID)
	}
	if u.CompanyID != nil {
		out.Company = m.companyByID(*u.CompanyID)
	}
	if u.DepartmentID != nil {
		out.Department = m.departmentByID(*u.DepartmentID)
	}
	return &out
}

func (m *fakeDB) CreateUser(_ context.Context, user *database.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	m.users = append(m.users, &cp)
	return nil
}

func (m *fakeDB) GetUserByID(_ context.Context, id string) (*database.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return m.loadUser(u), nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *fakeDB) GetUserByEmail(_ context.Context, email string) (*database.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return m.loadUser(u), nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *fakeDB) UpdateUser(_ context.Context, user *database.User) error {
	for i, u := range m.users {
		if u.ID == user.ID {
			cp := *user
			m.users[i] = &cp
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *fakeDB) DeleteUser(_ context.Context, id string) error {
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *fakeDB) ListUsers(_ context.Context) ([]*database.User, error) {
	out := make([]*database.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, m.loadUser(u))
	}
	return out, nil
}

func (m *fakeDB) CountUsersByRole(_ context.Context, roleID string) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.RoleID != nil && *u.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

func (m *fakeDB) CountUsersByCompany(_ context.Context, companyID string) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (m *fakeDB) CreateRole(_ context.Context, role *database.Role) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	cp := *role
	m.roles = append(m.roles, &cp)
	return nil
}

func (m *fakeDB) GetRoleByID(_ context.Context, id string) (*database.Role, error) {
	if r := m.roleByID(id); r != nil {
		cp := *r
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (m *fakeDB) GetRoleByName(_ context.Context, name string) (*database.Role, error) {
	for _, r := range m.roles {
		if r.Name == name {
			cp := *r
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *fakeDB) UpdateRole(_ context.Context, role *database.Role) error {
	for i, r := range m.roles {
		if r.ID == role.ID {
			cp := *role
			m.roles[i] = &cp
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *fakeDB) DeleteRole(_ context.Context, id string) error {
	for i, r := range m.roles {
		if r.ID == id {
			m.roles = append(m.roles[:i], m.roles[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *fakeDB) ListRoles(_ context.Context) ([]*database.Role, error) {
	return append([]*database.Role(nil), m.roles...), nil
}

func (m *fakeDB) CreateCompany(_ context.Context, company *database.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	cp := *company
	m.companies = append(m.companies, &cp)
	return nil
}

func (m *fakeDB) GetCompanyByID(_ context.Context, id string) (*database.Company, error) {
	if c := m.companyByID(id); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (m *fakeDB) GetCompanyByName(_ context.Context, name string) (*database.Company, error) {
	for _, c := range m.companies {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *fakeDB) UpdateCompany(_ context.Context, company *database.Company) error {
	for i, c := range m.companies {
		if c.ID == company.ID {
			cp := *company
			m.companies[i] = &cp
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *fakeDB) DeleteCompany(_ context.Context, id string) error {
	for i, c := range m.companies {
		if c.ID == id {
			m.companies = append(m.companies[:i], m.companies[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *fakeDB) ListCompanies(_ context.Context) ([]*database.Company, error) {
	return append([]*database.Company(nil), m.companies...), nil
}

func (m *fakeDB) CreateDepartment(_ context.Context, department *database.Department) error {
	if department.ID == "" {
		department.ID = uuid.NewString()
	}
	cp := *department
	m.departments = append(m.departments, &cp)
	return nil
}

func (m *fakeDB) GetDepartmentByID(_ context.Context, id string) (*database.Department, error) {
	if d := m.departmentByID(id); d != nil {
		cp := *d
		cp.Company = m.companyByID(d.CompanyID)
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (m *fakeDB) FindDepartmentByName(_ context.Context, companyID, name, excludeID string) (*database.Department, error) {
	for _, d := range m.departments {
		if d.CompanyID == companyID && d.Name == name && d.ID != excludeID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *fakeDB) UpdateDepartment(_ context.Context, department *database.Department) error {
	for i, d := range m.departments {
		if d.ID == department.ID {
			cp := *department
			m.departments[i] = &cp
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *fakeDB) DeleteDepartment(_ context.Context, id string) error {
	for i, d := range m.departments {
		if d.ID == id {
			m.departments = append(m.departments[:i], m.departments[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *fakeDB) ListDepartments(_ context.Context) ([]*database.Department, error) {
	out := make([]*database.Department, 0, len(m.departments))
	for _, d := range m.departments {
		cp := *d
		cp.Company = m.companyByID(d.CompanyID)
		out = append(out, &cp)
	}
	return out, nil
}

func (m *fakeDB) ListDepartmentsByCompany(_ context.Context, companyID string) ([]*database.Department, error) {
	out := make([]*database.Department, 0)
	for _, d := range m.departments {
		if d.CompanyID == companyID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *fakeDB) CountDepartmentsByCompany(_ context.Context, companyID string) (int64, error) {
	var n int64
	for _, d := range m.departments {
		if d.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}
