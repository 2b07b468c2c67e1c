package handlers

import (
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/dto"
)

type WebhookHandler struct {
	cfg *config.Config
}

func NewWebhookHandler(cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{cfg: cfg}
}

// HandleInboundSMS receives delivery receipts from the SMS provider,
// authenticated with HTTP Basic credentials compared in constant time.
func (h *WebhookHandler) HandleInboundSMS(c *fiber.Ctx) error {
	if h.cfg.SMSWebhookUser == "" || h.cfg.SMSWebhookPassword == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhooks not configured",
		})
	}

	username, password, ok := parseBasicAuth(c.Get("Authorization"))
	if !ok ||
		subtle.ConstantTimeCompare([]byte(username), []byte(h.cfg.SMSWebhookUser)) != 1 ||
		subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.SMSWebhookPassword)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var payload dto.InboundSMSWebhook
	if err := c.BodyParser(&payload); err != nil {
		return badRequestBody(c)
	}

	slog.Info("inbound sms webhook received", "message_id", payload.MessageID, "status", payload.Status)
	return c.JSON(fiber.Map{"received": true})
}

func parseBasicAuth(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
