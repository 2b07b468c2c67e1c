package services

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/teampulse/teampulse-backend/internal/config"
)

// NotificationService sends outbound SMS through a Twilio-compatible REST
// API. Delivery is fire-and-forget: callers never block on it and errors
// only reach the logs.
type NotificationService struct {
	cfg    *config.Config
	client *resty.Client
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	client := resty.New().
		SetBaseURL(cfg.SMSAPIBaseURL).
		SetTimeout(10 * time.Second).
		SetBasicAuth(cfg.SMSAccountID, cfg.SMSAuthToken)

	return &NotificationService{cfg: cfg, client: client}
}

// Enabled reports whether outbound SMS is configured at all.
func (s *NotificationService) Enabled() bool {
	return s.cfg.SMSAccountID != "" && s.cfg.SMSAuthToken != "" && s.cfg.SMSFromNumber != ""
}

func (s *NotificationService) SendSMS(to, message string) {
	if !s.Enabled() {
		return
	}
	if to == "" {
		slog.Warn("sms skipped: recipient has no phone number")
		return
	}

	resp, err := s.client.R().
		SetFormData(map[string]string{
			"From": s.cfg.SMSFromNumber,
			"To":   to,
			"Body": message,
		}).
		Post("/Accounts/" + s.cfg.SMSAccountID + "/Messages.json")
	if err != nil {
		slog.Error("sms send failed", "error", err)
		return
	}
	if resp.IsError() {
		slog.Error("sms provider rejected message", "status", resp.StatusCode())
		return
	}
	slog.Info("sms sent", "to_suffix", suffix(to))
}

// suffix keeps phone numbers out of the logs.
func suffix(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return "..." + phone[len(phone)-4:]
}
