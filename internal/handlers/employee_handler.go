package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/services"
	"github.com/teampulse/teampulse-backend/internal/tenant"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	employees, err := h.employeeService.List(identity.OrgID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employees)
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	employee, err := h.employeeService.Create(identity.OrgID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}
