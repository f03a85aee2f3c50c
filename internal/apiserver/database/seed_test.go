package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kanri-app/kanri/internal/auth/permission"
	"github.com/kanri-app/kanri/internal/common/config"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// seedStore implements just enough of Database for SeedDefaults.
type seedStore struct {
	Database
	roles []*Role
	users []*User
}

func (s *seedStore) GetRoleByName(_ context.Context, name string) (*Role, error) {
	for _, r := range s.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *seedStore) CreateRole(_ context.Context, role *Role) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	s.roles = append(s.roles, role)
	return nil
}

func (s *seedStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *seedStore) CreateUser(_ context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.users = append(s.users, user)
	return nil
}

func TestSeedDefaults(t *testing.T) {
	store := &seedStore{}
	admin := &config.SuperAdminConfig{Email: "admin@example.com", Password: "admin123456"}

	assert.NoError(t, SeedDefaults(context.Background(), store, admin))
	assert.Len(t, store.roles, 3)

	adminRole, err := store.GetRoleByName(context.Background(), "admin")
	assert.NoError(t, err)
	assert.Contains(t, adminRole.Permissions, permission.UserCreate)
	assert.Contains(t, adminRole.Permissions, permission.SettingsUpdate)

	userRole, err := store.GetRoleByName(context.Background(), "user")
	assert.NoError(t, err)
	assert.Contains(t, userRole.Permissions, permission.PageDemo1)
	assert.NotContains(t, userRole.Permissions, permission.UserCreate)

	viewerRole, err := store.GetRoleByName(context.Background(), "viewer")
	assert.NoError(t, err)
	assert.NotContains(t, viewerRole.Permissions, permission.PageDemo1)

	assert.Len(t, store.users, 1)
	su := store.users[0]
	assert.Equal(t, "管理者", su.Name)
	assert.Equal(t, adminRole.ID, *su.RoleID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(su.Password), []byte("admin123456")))
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	store := &seedStore{}
	admin := &config.SuperAdminConfig{Name: "運用管理者", Email: "admin@example.com", Password: "admin123456"}

	assert.NoError(t, SeedDefaults(context.Background(), store, admin))
	firstHash := store.users[0].Password

	assert.NoError(t, SeedDefaults(context.Background(), store, admin))
	assert.Len(t, store.roles, 3)
	assert.Len(t, store.users, 1)
	assert.Equal(t, firstHash, store.users[0].Password)
}

func TestSeedDefaults_NoAdminConfigured(t *testing.T) {
	store := &seedStore{}
	assert.NoError(t, SeedDefaults(context.Background(), store, nil))
	assert.Len(t, store.roles, 3)
	assert.Empty(t, store.users)

	store = &seedStore{}
	assert.NoError(t, SeedDefaults(context.Background(), store, &config.SuperAdminConfig{Email: "a@example.com"}))
	assert.Empty(t, store.users)
}
