package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/services"
	"github.com/teampulse/teampulse-backend/internal/tenant"
)

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) Presign(c *fiber.Ctx) error {
	identity, ok := tenant.GetIdentity(c)
	if !ok {
		return unauthorizedIdentity(c)
	}

	var req dto.PresignUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.uploadService.PresignUpload(c.Context(), identity.OrgID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
