package dto

// CreateDepartmentRequest represents a request to create a new department
type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CompanyID   string `json:"companyId"`
}

// UpdateDepartmentRequest represents a request to update a department.
// Name and CompanyID are required, matching the create contract.
type UpdateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CompanyID   string  `json:"companyId"`
}
