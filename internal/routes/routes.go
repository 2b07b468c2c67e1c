package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/handlers"
	"github.com/teampulse/teampulse-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
	employeeHandler *handlers.EmployeeHandler,
	teamHandler *handlers.TeamHandler,
	uploadHandler *handlers.UploadHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth is public but gets a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Inbound webhooks authenticate with basic auth, not JWT
	api.Post("/webhooks/sms/inbound", webhookHandler.HandleInboundSMS)

	// Everything below runs behind the gate: token verification then
	// tenant resolution, in that order.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.ResolveTenant(db))

	protected.Get("/projects", projectHandler.List)
	protected.Get("/projects/:id", projectHandler.Get)
	protected.Post("/projects", projectHandler.Create)

	protected.Get("/tasks", taskHandler.ListByProject)
	protected.Post("/tasks", taskHandler.Create)
	protected.Put("/tasks/:id", taskHandler.Update)
	protected.Patch("/tasks/:id/status", taskHandler.UpdateStatus)
	protected.Get("/tasks/user/:userId", taskHandler.ListForUser)
	protected.Post("/tasks/:taskId/comments", taskHandler.AddComment)
	protected.Post("/tasks/:taskId/checklist", taskHandler.AddChecklistItem)
	protected.Get("/tasks/:taskId/checklist", taskHandler.ListChecklist)
	protected.Patch("/checklist/:id", taskHandler.ToggleChecklistItem)

	protected.Get("/employees", employeeHandler.List)
	protected.Post("/employees", employeeHandler.Create)

	protected.Get("/teams", teamHandler.List)
	protected.Post("/teams", teamHandler.Create)

	if uploadHandler != nil {
		protected.Post("/uploads/presign", uploadHandler.Presign)
	}
}
