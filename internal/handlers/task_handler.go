package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/services"
	"github.com/teampulse/teampulse-backend/internal/tenant"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListByProject(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	projectID, err := uuid.Parse(c.Query("projectId"))
	if err != nil {
		return badRequestBody(c)
	}

	tasks, err := h.taskService.ListByProject(identity.OrgID, projectID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) ListForUser(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequestBody(c)
	}

	tasks, err := h.taskService.ListForUser(identity.OrgID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	task, err := h.taskService.Create(identity.OrgID, identity.UserID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestBody(c)
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	task, err := h.taskService.Update(identity.OrgID, taskID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestBody(c)
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	task, err := h.taskService.UpdateStatus(identity.OrgID, taskID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) AddComment(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return badRequestBody(c)
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	comment, err := h.taskService.AddComment(identity.OrgID, taskID, identity.UserID, req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *TaskHandler) AddChecklistItem(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return badRequestBody(c)
	}

	var req dto.CreateChecklistItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	item, err := h.taskService.AddChecklistItem(identity.OrgID, taskID, identity.UserID, req.Title)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *TaskHandler) ListChecklist(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return badRequestBody(c)
	}

	items, err := h.taskService.ListChecklist(identity.OrgID, taskID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *TaskHandler) ToggleChecklistItem(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestBody(c)
	}

	var req dto.ToggleChecklistItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	item, err := h.taskService.ToggleChecklistItem(identity.OrgID, itemID, req.Completed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
