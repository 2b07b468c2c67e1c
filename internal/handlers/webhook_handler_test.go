package handlers_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/handlers"
)

func newWebhookApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Post("/api/webhooks/sms/inbound", handlers.NewWebhookHandler(cfg).HandleInboundSMS)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	body := strings.NewReader(`{"messageId":"SM123","status":"delivered"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/sms/inbound", body)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestInboundSMSWebhookAuth(t *testing.T) {
	cfg := &config.Config{SMSWebhookUser: "hook", SMSWebhookPassword: "s3cret"}
	app := newWebhookApp(cfg)

	resp := postWebhook(t, app, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postWebhook(t, app, basicAuth("hook", "wrong"))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postWebhook(t, app, basicAuth("hook", "s3cret"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInboundSMSWebhookDisabledWithoutCredentials(t *testing.T) {
	app := newWebhookApp(&config.Config{})

	resp := postWebhook(t, app, basicAuth("hook", "s3cret"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
