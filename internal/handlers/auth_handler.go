package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		Message: "User and organization created successfully",
		User:    *user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	// The subdomain may also arrive via the Host header when the SPA is
	// served per tenant; an explicit body value wins.
	if req.SubDomain == "" {
		req.SubDomain = subdomainFromHost(c.Hostname())
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// subdomainFromHost extracts "acme" from "acme.teampulse.example". Bare
// hosts and IPs yield nothing.
func subdomainFromHost(host string) string {
	host = strings.Split(host, ":")[0]
	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}
	return strings.ToLower(parts[0])
}
