package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	ProjectID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Status         string         `gorm:"size:50;default:'todo'" json:"status"`
	Priority       string         `gorm:"size:50" json:"priority"`
	Tags           datatypes.JSON `json:"tags,omitempty"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	Points         int            `json:"points"`
	AuthorUserID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_user_id"`
	AssignedUserID *uuid.UUID     `gorm:"type:uuid;index" json:"assigned_user_id,omitempty"`
	Author         *User          `gorm:"foreignKey:AuthorUserID" json:"author,omitempty"`
	Assignee       *User          `gorm:"foreignKey:AssignedUserID" json:"assignee,omitempty"`
	Comments       []TaskComment  `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
	Attachments    []Attachment   `gorm:"foreignKey:TaskID" json:"attachments,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

type TaskComment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	TaskID         uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

type Attachment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	TaskID         uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	FileURL        string    `gorm:"size:1024;not null" json:"file_url"`
	FileName       string    `gorm:"size:255" json:"file_name"`
	UploadedByID   uuid.UUID `gorm:"type:uuid;not null" json:"uploaded_by_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type TaskChecklistItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	TaskID         uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Completed      bool      `gorm:"default:false" json:"completed"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Task status values used by the board columns.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusReview     = "review"
	TaskStatusDone       = "done"
)
