package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is a global catalog entry, not tenant-scoped. Created lazily on
// signup when the requested name does not exist yet.
type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

const DefaultRoleName = "user"
