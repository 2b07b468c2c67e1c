package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/teampulse/teampulse-backend/internal/apperr"
	"github.com/teampulse/teampulse-backend/internal/dto"
)

// statusByKind is the single place error kinds turn into status codes.
var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:         fiber.StatusBadRequest,
	apperr.KindConflict:           fiber.StatusConflict,
	apperr.KindInvalidCredentials: fiber.StatusUnauthorized,
	apperr.KindUnauthorized:       fiber.StatusUnauthorized,
	apperr.KindForbidden:          fiber.StatusForbidden,
	apperr.KindNotFound:           fiber.StatusNotFound,
	apperr.KindInternal:           fiber.StatusInternalServerError,
}

// respondError maps a service error onto the wire. Validation errors carry
// every violated rule; internal errors are logged and reported generically
// so nothing leaks.
func respondError(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	status := statusByKind[kind]

	if kind == apperr.KindInternal {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	var v *apperr.ValidationError
	if errors.As(err, &v) {
		return c.Status(status).JSON(dto.ErrorResponse{
			Error:    true,
			Message:  "Validation failed",
			Messages: v.Violations,
		})
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}

func badRequestBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}
