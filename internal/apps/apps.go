package apps

import "github.com/kanri-app/kanri/internal/auth/permission"

// Application describes an entry in the portal launcher. Permission is
// the single permission string a session must hold to see and open the
// application. PreventNavigationBack tells the client to suppress
// browser history navigation back into the portal after launch.
type Application struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description,omitempty"`
	Icon                  string   `json:"icon,omitempty"`
	Permission            string   `json:"permission"`
	Category              string   `json:"category,omitempty"`
	Tags                  []string `json:"tags,omitempty"`
	PreventNavigationBack bool     `json:"preventNavigationBack"`
	IsActive              bool     `json:"isActive"`
}

// registry is the static application catalog. Adding an application is
// a code change; there is no runtime registration.
var registry = []Application{
	{
		ID:                    "demo1",
		Name:                  "デモ1アプリケーション",
		Description:           "デモ1アプリケーションの説明文をここに記載します。シンプルなUIと基本機能を備えたデモアプリです。",
		Icon:                  "🚀",
		Permission:            permission.PageDemo1,
		Category:              "デモ",
		Tags:                  []string{"基本", "シンプル"},
		PreventNavigationBack: false,
		IsActive:              true,
	},
	{
		ID:                    "demo2",
		Name:                  "デモ2アプリケーション",
		Description:           "デモ2アプリケーションの説明文をここに記載します。タブインターフェースを使った高度なデモアプリです。",
		Icon:                  "⚙️",
		Permission:            permission.PageDemo2,
		Category:              "デモ",
		Tags:                  []string{"高度", "タブ"},
		PreventNavigationBack: true,
		IsActive:              true,
	},
}

// All returns the full catalog, active or not.
func All() []Application {
	out := make([]Application, len(registry))
	copy(out, registry)
	return out
}

// ByID returns the application with the given id.
func ByID(id string) (Application, bool) {
	for _, app := range registry {
		if app.ID == id {
			return app, true
		}
	}
	return Application{}, false
}

// CanAccess reports whether the held permission set grants the
// application. Inactive applications are never accessible.
func CanAccess(app Application, held []string) bool {
	if !app.IsActive {
		return false
	}
	return permission.Has(held, app.Permission)
}

// FilterByPermissions returns the active applications visible to a
// session holding the given permissions, in catalog order.
func FilterByPermissions(held []string) []Application {
	out := make([]Application, 0, len(registry))
	for _, app := range registry {
		if CanAccess(app, held) {
			out = append(out, app)
		}
	}
	return out
}
