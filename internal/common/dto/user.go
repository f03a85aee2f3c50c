package dto

// CreateUserRequest represents a request to create a new user
type CreateUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	RoleID       string `json:"roleId"`
	CompanyID    string `json:"companyId,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
}

// UpdateUserRequest represents a request to update a user. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	RoleID *string `json:"roleId,omitempty"`
}
