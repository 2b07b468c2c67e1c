package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a global identity record. Email and phone are unique across all
// tenants; tenant membership lives in OrganizationUser.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string         `gorm:"size:100;not null" json:"first_name"`
	LastName  string         `gorm:"size:100;not null" json:"last_name"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     string         `gorm:"size:30;not null;uniqueIndex" json:"phone"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
