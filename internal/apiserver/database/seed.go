package database

import (
	"context"
	"errors"

	"github.com/kanri-app/kanri/internal/auth/permission"
	"github.com/kanri-app/kanri/internal/common/config"
	"golang.org/x/crypto/bcrypt"
)

// builtinRoles are created on first start when absent. Permission sets
// mirror the portal's default admin / user / viewer split.
var builtinRoles = []Role{
	{
		Name:        "admin",
		Description: "管理者権限",
		Permissions: append(permission.All(),
			permission.SettingsRead,
			permission.SettingsUpdate,
		),
	},
	{
		Name:        "user",
		Description: "一般ユーザー権限",
		Permissions: []string{
			permission.UserRead,
			permission.CompanyRead,
			permission.DepartmentRead,
			permission.PageDemo1,
		},
	},
	{
		Name:        "viewer",
		Description: "閲覧専用権限",
		Permissions: []string{
			permission.UserRead,
			permission.CompanyRead,
			permission.DepartmentRead,
		},
	},
}

// SeedDefaults ensures the builtin roles exist and, when configured,
// provisions the super admin account. Existing records are left alone.
func SeedDefaults(ctx context.Context, db Database, admin *config.SuperAdminConfig) error {
	for i := range builtinRoles {
		if _, err := db.GetRoleByName(ctx, builtinRoles[i].Name); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		role := builtinRoles[i]
		if err := db.CreateRole(ctx, &role); err != nil {
			return err
		}
	}

	if admin == nil || admin.Email == "" || admin.Password == "" {
		return nil
	}

	if _, err := db.GetUserByEmail(ctx, admin.Email); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	adminRole, err := db.GetRoleByName(ctx, "admin")
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := admin.Name
	if name == "" {
		name = "管理者"
	}
	return db.CreateUser(ctx, &User{
		Name:     name,
		Email:    admin.Email,
		Password: string(hashed),
		RoleID:   &adminRole.ID,
	})
}
