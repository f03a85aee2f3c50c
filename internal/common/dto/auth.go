package dto

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// RegisterRequest represents a self-registration request. RoleID may only
// be set by an administrator session.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"roleId,omitempty"`
}

// ChangePasswordRequest represents a request to change password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserInfo is the identity payload returned by login and /api/auth/me.
type UserInfo struct {
	ID         string       `json:"id"`
	Name       string       `json:"name,omitempty"`
	Email      string       `json:"email"`
	Image      string       `json:"image,omitempty"`
	Role       *RoleInfo    `json:"role,omitempty"`
	Company    *EntityBrief `json:"company,omitempty"`
	Department *EntityBrief `json:"department,omitempty"`
}

// RoleInfo is the role snapshot carried on identity payloads.
type RoleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// EntityBrief is a compact id/name summary of a related entity.
type EntityBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
