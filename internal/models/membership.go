package models

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationUser binds a User to an Organization. Every authorization
// decision ultimately resolves to one of these rows.
type OrganizationUser struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_org_user" json:"organization_id"`
	UserID         uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_org_user" json:"user_id"`
	Organization   Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	User           User         `gorm:"foreignKey:UserID" json:"-"`
	Roles          []OrgUserRole `gorm:"foreignKey:OrganizationUserID" json:"roles,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// OrgUserRole attaches a Role to a membership. A membership may carry
// several roles; login picks the earliest-created one.
type OrgUserRole struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_user_role" json:"organization_user_id"`
	RoleID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_user_role" json:"role_id"`
	Role               Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
