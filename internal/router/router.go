package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/herupa/herupa-go-api/internal/config"
	"github.com/herupa/herupa-go-api/internal/handler"
	"github.com/herupa/herupa-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	SessionHandler    *handler.SessionHandler
	CredentialHandler *handler.CredentialHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	if deps.CredentialHandler != nil {
		deps.CredentialHandler.Register(api.Group("/credential"))
	}

	if deps.SessionHandler != nil {
		deps.SessionHandler.Register(api.Group("/sessions"))
	}
}
