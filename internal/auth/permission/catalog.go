package permission

// Permission identifiers used by the portal's routes and pages.
const (
	UserCreate = "user:create"
	UserRead   = "user:read"
	UserUpdate = "user:update"
	UserDelete = "user:delete"

	RoleCreate = "role:create"
	RoleRead   = "role:read"
	RoleUpdate = "role:update"
	RoleDelete = "role:delete"

	CompanyCreate = "company:create"
	CompanyRead   = "company:read"
	CompanyUpdate = "company:update"
	CompanyDelete = "company:delete"

	DepartmentCreate = "department:create"
	DepartmentRead   = "department:read"
	DepartmentUpdate = "department:update"
	DepartmentDelete = "department:delete"

	SettingsRead   = "settings:read"
	SettingsUpdate = "settings:update"

	PageDemo1 = "page:demo1"
	PageDemo2 = "page:demo2"
)

// Entry is a single permission with its display label.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Group is a named set of related permissions shown together in the
// role editor.
type Group struct {
	Name        string  `json:"name"`
	Permissions []Entry `json:"permissions"`
}

// Groups is the portal-wide permission catalog.
var Groups = []Group{
	{
		Name: "ユーザー管理",
		Permissions: []Entry{
			{ID: UserCreate, Label: "ユーザー作成"},
			{ID: UserRead, Label: "ユーザー閲覧"},
			{ID: UserUpdate, Label: "ユーザー更新"},
			{ID: UserDelete, Label: "ユーザー削除"},
		},
	},
	{
		Name: "ロール管理",
		Permissions: []Entry{
			{ID: RoleCreate, Label: "ロール作成"},
			{ID: RoleRead, Label: "ロール閲覧"},
			{ID: RoleUpdate, Label: "ロール更新"},
			{ID: RoleDelete, Label: "ロール削除"},
		},
	},
	{
		Name: "会社管理",
		Permissions: []Entry{
			{ID: CompanyCreate, Label: "会社作成"},
			{ID: CompanyRead, Label: "会社閲覧"},
			{ID: CompanyUpdate, Label: "会社更新"},
			{ID: CompanyDelete, Label: "会社削除"},
		},
	},
	{
		Name: "部署管理",
		Permissions: []Entry{
			{ID: DepartmentCreate, Label: "部署作成"},
			{ID: DepartmentRead, Label: "部署閲覧"},
			{ID: DepartmentUpdate, Label: "部署更新"},
			{ID: DepartmentDelete, Label: "部署削除"},
		},
	},
	{
		Name: "アプリ",
		Permissions: []Entry{
			{ID: PageDemo1, Label: "デモ1アプリケーション"},
			{ID: PageDemo2, Label: "デモ2アプリケーション"},
		},
	},
}

// All returns every permission ID in the catalog.
func All() []string {
	var ids []string
	for _, g := range Groups {
		for _, p := range g.Permissions {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Label returns the display label for a permission ID, or the ID itself
// when the permission is not in the catalog.
func Label(id string) string {
	for _, g := range Groups {
		for _, p := range g.Permissions {
			if p.ID == id {
				return p.Label
			}
		}
	}
	return id
}
