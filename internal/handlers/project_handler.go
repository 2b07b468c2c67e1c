package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/services"
	"github.com/teampulse/teampulse-backend/internal/tenant"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	projects, err := h.projectService.List(identity.OrgID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projects)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequestBody(c)
	}

	project, err := h.projectService.Get(identity.OrgID, projectID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	project, err := h.projectService.Create(identity.OrgID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func unauthorizedIdentity(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
