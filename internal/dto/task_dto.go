package dto

import "time"

type CreateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status,omitempty"`
	Priority       string     `json:"priority,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Points         int        `json:"points,omitempty"`
	ProjectID      string     `json:"projectId"`
	AssignedUserID string     `json:"assignedUserId,omitempty"`
	AttachmentURL  string     `json:"attachmentUrl,omitempty"`
}

type UpdateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status,omitempty"`
	Priority       string     `json:"priority,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Points         int        `json:"points,omitempty"`
	AssignedUserID string     `json:"assignedUserId,omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CreateChecklistItemRequest struct {
	Title string `json:"title"`
}

type ToggleChecklistItemRequest struct {
	Completed bool `json:"completed"`
}
