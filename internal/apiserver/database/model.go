package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a portal account. Role, Company and Department are
// optional associations; Password holds the bcrypt digest and is never
// serialized.
type User struct {
	ID           string      `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name         string      `json:"name" gorm:"type:varchar(100)"`
	Email        string      `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string      `json:"-" gorm:"not null"`
	Image        string      `json:"image,omitempty" gorm:"type:text"`
	RoleID       *string     `json:"roleId" gorm:"type:varchar(36);index"`
	CompanyID    *string     `json:"companyId" gorm:"type:varchar(36);index"`
	DepartmentID *string     `json:"departmentId" gorm:"type:varchar(36);index"`
	Role         *Role       `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Company      *Company    `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Role carries a flat set of opaque permission strings stored as JSON.
type Role struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Permissions []string  `json:"permissions" gorm:"serializer:json;type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Company struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Address     string    `json:"address,omitempty" gorm:"type:text"`
	Phone       string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Email       string    `json:"email,omitempty" gorm:"type:varchar(255)"`
	Website     string    `json:"website,omitempty" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Department names are only unique within their company.
type Department struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_department_company_name,priority:2"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CompanyID   string    `json:"companyId" gorm:"type:varchar(36);not null;uniqueIndex:idx_department_company_name,priority:1"`
	Company     *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (r *Role) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (c *Company) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (d *Department) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
