package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is the tenant record. Subdomain is globally unique and is
// what login uses to pick a tenant when a user belongs to several.
type Organization struct {
	ID        uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string                `gorm:"size:255;not null" json:"name"`
	Subdomain string                `gorm:"size:63;not null;uniqueIndex" json:"subdomain"`
	Settings  *OrganizationSettings `gorm:"foreignKey:OrganizationID" json:"settings,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	DeletedAt gorm.DeletedAt        `gorm:"index" json:"-"`
}

type OrganizationSettings struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"organization_id"`
	Timezone       string    `gorm:"size:64;default:'UTC'" json:"timezone"`
	AllowGuests    bool      `gorm:"default:false" json:"allow_guests"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
