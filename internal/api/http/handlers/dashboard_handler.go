package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-tracker/internal/service"
)

// DashboardHandler serves the KPI panel.
type DashboardHandler struct {
	service *service.TicketService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(ticketService *service.TicketService) *DashboardHandler {
	return &DashboardHandler{service: ticketService}
}

// GetStats GET /api/dashboard.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Dashboard(time.Now())})
}
