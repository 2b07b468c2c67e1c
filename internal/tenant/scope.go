package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForOrg returns a GORM scope that filters by organization_id. Every
// tenant-scoped query goes through this scope with the org id taken from
// the verified token, never from client input.
func ForOrg(orgID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", orgID)
	}
}
