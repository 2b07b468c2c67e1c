package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/teampulse/teampulse-backend/internal/apperr"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/models"
	"github.com/teampulse/teampulse-backend/internal/tenant"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound          = apperr.New(apperr.KindNotFound, "task not found")
	ErrChecklistItemNotFound = apperr.New(apperr.KindNotFound, "checklist item not found")
)

type TaskService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewTaskService(db *gorm.DB, notifier *NotificationService) *TaskService {
	return &TaskService{db: db, notifier: notifier}
}

func (s *TaskService) ListByProject(orgID, projectID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Scopes(tenant.ForOrg(orgID)).
		Preload("Author").
		Preload("Assignee").
		Preload("Comments").
		Preload("Attachments").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListForUser returns tasks the user authored or is assigned to.
func (s *TaskService) ListForUser(orgID, userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Scopes(tenant.ForOrg(orgID)).
		Preload("Author").
		Preload("Assignee").
		Where("author_user_id = ? OR assigned_user_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Create(orgID, authorID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	var violations []string
	if req.Title == "" {
		violations = append(violations, "Task title is required")
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		violations = append(violations, "Valid projectId is required")
	}
	if err := apperr.Validation(violations); err != nil {
		return nil, err
	}

	var project models.Project
	if err := s.db.Scopes(tenant.ForOrg(orgID)).First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	task := models.Task{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ProjectID:      projectID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		Tags:           marshalTags(req.Tags),
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		Points:         req.Points,
		AuthorUserID:   authorID,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}

	if req.AssignedUserID != "" {
		assigneeID, err := uuid.Parse(req.AssignedUserID)
		if err != nil {
			return nil, apperr.Validation([]string{"Valid assignedUserId is required"})
		}
		task.AssignedUserID = &assigneeID
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		if req.AttachmentURL != "" {
			attachment := models.Attachment{
				ID:             uuid.New(),
				OrganizationID: orgID,
				TaskID:         task.ID,
				FileURL:        req.AttachmentURL,
				UploadedByID:   authorID,
			}
			return tx.Create(&attachment).Error
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if task.AssignedUserID != nil {
		s.notifyAssignee(orgID, *task.AssignedUserID, task.Title)
	}
	return &task, nil
}

func (s *TaskService) Update(orgID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.load(orgID, taskID)
	if err != nil {
		return nil, err
	}

	previousAssignee := task.AssignedUserID

	task.Title = req.Title
	task.Description = req.Description
	task.Status = req.Status
	task.Priority = req.Priority
	task.Tags = marshalTags(req.Tags)
	task.StartDate = req.StartDate
	task.DueDate = req.DueDate
	task.Points = req.Points
	task.AssignedUserID = nil
	if req.AssignedUserID != "" {
		assigneeID, err := uuid.Parse(req.AssignedUserID)
		if err != nil {
			return nil, apperr.Validation([]string{"Valid assignedUserId is required"})
		}
		task.AssignedUserID = &assigneeID
	}

	if err := s.db.Save(task).Error; err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if task.AssignedUserID != nil && (previousAssignee == nil || *previousAssignee != *task.AssignedUserID) {
		s.notifyAssignee(orgID, *task.AssignedUserID, task.Title)
	}
	return task, nil
}

func (s *TaskService) UpdateStatus(orgID, taskID uuid.UUID, status string) (*models.Task, error) {
	if status == "" {
		return nil, apperr.Validation([]string{"Status is required"})
	}
	task, err := s.load(orgID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(task).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	task.Status = status
	return task, nil
}

func (s *TaskService) AddComment(orgID, taskID, userID uuid.UUID, text string) (*models.TaskComment, error) {
	if text == "" {
		return nil, apperr.Validation([]string{"Comment text is required"})
	}
	if _, err := s.load(orgID, taskID); err != nil {
		return nil, err
	}

	comment := models.TaskComment{
		ID:             uuid.New(),
		OrganizationID: orgID,
		TaskID:         taskID,
		UserID:         userID,
		Text:           text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

func (s *TaskService) AddChecklistItem(orgID, taskID, createdBy uuid.UUID, title string) (*models.TaskChecklistItem, error) {
	if title == "" {
		return nil, apperr.Validation([]string{"Checklist title is required"})
	}
	if _, err := s.load(orgID, taskID); err != nil {
		return nil, err
	}

	item := models.TaskChecklistItem{
		ID:             uuid.New(),
		OrganizationID: orgID,
		TaskID:         taskID,
		Title:          title,
		Completed:      false,
		CreatedBy:      createdBy,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create checklist item: %w", err)
	}
	return &item, nil
}

func (s *TaskService) ListChecklist(orgID, taskID uuid.UUID) ([]models.TaskChecklistItem, error) {
	if _, err := s.load(orgID, taskID); err != nil {
		return nil, err
	}
	var items []models.TaskChecklistItem
	err := s.db.Scopes(tenant.ForOrg(orgID)).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	return items, nil
}

func (s *TaskService) ToggleChecklistItem(orgID, itemID uuid.UUID, completed bool) (*models.TaskChecklistItem, error) {
	var item models.TaskChecklistItem
	if err := s.db.Scopes(tenant.ForOrg(orgID)).First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChecklistItemNotFound
		}
		return nil, fmt.Errorf("failed to load checklist item: %w", err)
	}
	if err := s.db.Model(&item).Update("completed", completed).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle checklist item: %w", err)
	}
	item.Completed = completed
	return &item, nil
}

func (s *TaskService) load(orgID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := s.db.Scopes(tenant.ForOrg(orgID)).First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return &task, nil
}

// notifyAssignee fires an SMS without blocking the request; delivery
// failures are logged and never surfaced to the caller.
func (s *TaskService) notifyAssignee(orgID, assigneeID uuid.UUID, title string) {
	if s.notifier == nil {
		return
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", assigneeID).Error; err != nil {
		slog.Warn("assignee lookup for notification failed", "org_id", orgID.String(), "user_id", assigneeID.String(), "error", err)
		return
	}
	go s.notifier.SendSMS(user.Phone, fmt.Sprintf("You have been assigned a new task: %s", title))
}

func marshalTags(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		return nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
