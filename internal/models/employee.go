package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_org_employee_email" json:"organization_id"`
	Email             string         `gorm:"size:255;not null;uniqueIndex:idx_org_employee_email" json:"email"`
	FirstName         string         `gorm:"size:100;not null" json:"first_name"`
	LastName          string         `gorm:"size:100;not null" json:"last_name"`
	Position          string         `gorm:"size:100" json:"position"`
	Department        string         `gorm:"size:100" json:"department"`
	HireDate          *time.Time     `json:"hire_date,omitempty"`
	Phone             string         `gorm:"size:30" json:"phone"`
	ProfilePictureURL string         `gorm:"size:1024" json:"profile_picture_url"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
