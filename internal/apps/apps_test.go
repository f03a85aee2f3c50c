package apps

import (
	"testing"

	"github.com/kanri-app/kanri/internal/auth/permission"
	"github.com/stretchr/testify/assert"
)

func TestByID(t *testing.T) {
	app, ok := ByID("demo1")
	assert.True(t, ok)
	assert.Equal(t, "デモ1アプリケーション", app.Name)
	assert.Equal(t, permission.PageDemo1, app.Permission)

	_, ok = ByID("nope")
	assert.False(t, ok)
}

func TestCatalogEntries(t *testing.T) {
	demo1, _ := ByID("demo1")
	assert.Equal(t, "🚀", demo1.Icon)
	assert.Equal(t, "デモ", demo1.Category)
	assert.Equal(t, []string{"基本", "シンプル"}, demo1.Tags)
	assert.False(t, demo1.PreventNavigationBack)

	// Only demo2 suppresses back navigation after launch.
	demo2, _ := ByID("demo2")
	assert.Equal(t, "⚙️", demo2.Icon)
	assert.Equal(t, []string{"高度", "タブ"}, demo2.Tags)
	assert.True(t, demo2.PreventNavigationBack)
}

func TestFilterByPermissions(t *testing.T) {
	// No permissions, no apps.
	assert.Empty(t, FilterByPermissions(nil))

	got := FilterByPermissions([]string{permission.PageDemo1})
	assert.Len(t, got, 1)
	assert.Equal(t, "demo1", got[0].ID)

	got = FilterByPermissions([]string{permission.PageDemo1, permission.PageDemo2})
	assert.Len(t, got, 2)

	// Unrelated permissions grant nothing.
	assert.Empty(t, FilterByPermissions([]string{permission.UserRead, permission.RoleRead}))
}

func TestCanAccess(t *testing.T) {
	app, _ := ByID("demo2")
	assert.True(t, CanAccess(app, []string{permission.PageDemo2}))
	assert.False(t, CanAccess(app, []string{permission.PageDemo1}))

	inactive := app
	inactive.IsActive = false
	assert.False(t, CanAccess(inactive, []string{permission.PageDemo2}))
}
