package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-tracker/internal/api/dto"
	"github.com/spec-kit/ticket-tracker/internal/service"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

// StatusesHandler manages the status taxonomy editor endpoints.
type StatusesHandler struct {
	service *service.TicketService
}

// NewStatusesHandler constructs handler.
func NewStatusesHandler(ticketService *service.TicketService) *StatusesHandler {
	return &StatusesHandler{service: ticketService}
}

// ListStatuses GET /api/statuses.
func (h *StatusesHandler) ListStatuses(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Statuses()})
}

// ReplaceStatuses PUT /api/statuses. The editor submits the full new list;
// duplicates collapse to their first occurrence.
func (h *StatusesHandler) ReplaceStatuses(c *fiber.Ctx) error {
	var req dto.ReplaceStatusesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.Statuses) == 0 {
		return apperrors.NewValidationError("statuses required", nil)
	}

	stored, err := h.service.ReplaceStatuses(c.UserContext(), req.Statuses)
	if err != nil && !apperrors.IsStorageWarning(err) {
		return err
	}

	response := fiber.Map{"data": stored}
	if err != nil {
		response["warning"] = err.Error()
	}
	return c.JSON(response)
}
