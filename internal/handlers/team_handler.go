package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/services"
	"github.com/teampulse/teampulse-backend/internal/tenant"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) List(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	teams, err := h.teamService.List(identity.OrgID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(teams)
}

func (h *TeamHandler) Create(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	team, err := h.teamService.Create(identity.OrgID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}
