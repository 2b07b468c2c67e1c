package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name                 string         `gorm:"size:255;not null" json:"name"`
	ProductOwnerUserID   *uuid.UUID     `gorm:"type:uuid" json:"product_owner_user_id,omitempty"`
	ProjectManagerUserID *uuid.UUID     `gorm:"type:uuid" json:"project_manager_user_id,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}
