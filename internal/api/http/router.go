package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-tracker/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration. The /api groups
// map 1:1 onto the tracker's views: dashboard, tickets, form, config, guide.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Dashboard *handlers.DashboardHandler
	Tickets   *handlers.TicketsHandler
	Statuses  *handlers.StatusesHandler
	Views     *handlers.ViewHandler
	Guide     *handlers.GuideHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/dashboard", cfg.Dashboard.GetStats)

	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Put("/tickets", cfg.Tickets.SubmitTicket)
	api.Get("/tickets/:id", cfg.Tickets.GetTicket)
	api.Delete("/tickets/:id", cfg.Tickets.DeleteTicket)

	api.Get("/statuses", cfg.Statuses.ListStatuses)
	api.Put("/statuses", cfg.Statuses.ReplaceStatuses)

	api.Get("/view", cfg.Views.GetView)
	api.Post("/view", cfg.Views.SelectView)

	api.Get("/guide", cfg.Guide.GetGuide)
}
