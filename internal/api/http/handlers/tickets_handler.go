package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-tracker/internal/api/dto"
	"github.com/spec-kit/ticket-tracker/internal/domain"
	"github.com/spec-kit/ticket-tracker/internal/forms"
	"github.com/spec-kit/ticket-tracker/internal/service"
	"github.com/spec-kit/ticket-tracker/internal/viewstate"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

// TicketsHandler manages the ticket table and form endpoints.
type TicketsHandler struct {
	service *service.TicketService
	views   *viewstate.Controller
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, views *viewstate.Controller) *TicketsHandler {
	return &TicketsHandler{service: ticketService, views: views}
}

// ListTickets GET /api/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets := h.service.List()
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTicket GET /api/tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(&ticket)})
}

// SubmitTicket PUT /api/tickets. Create and edit are one operation keyed by
// the ticket number; validation failures report every invalid field.
func (h *TicketsHandler) SubmitTicket(c *fiber.Ctx) error {
	var req dto.SubmitTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	draft := forms.TicketDraft{
		ID:           req.ID,
		Status:       req.Status,
		OpenedAt:     req.OpenedAt,
		Description:  req.Description,
		PendingSince: req.PendingSince,
	}

	list, err := h.service.Submit(c.UserContext(), draft)
	if err != nil && !apperrors.IsStorageWarning(err) {
		return err
	}
	h.views.Submitted()

	response := fiber.Map{"data": ticketResponses(list)}
	if err != nil {
		response["warning"] = err.Error()
	}
	return c.JSON(response)
}

// DeleteTicket DELETE /api/tickets/:id. Unknown ids are a no-op.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	_, err := h.service.Delete(c.UserContext(), c.Params("id"))
	if err != nil && !apperrors.IsStorageWarning(err) {
		return err
	}
	if err != nil {
		return c.JSON(fiber.Map{"warning": err.Error()})
	}
	return c.SendStatus(http.StatusNoContent)
}

func ticketResponse(t *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:           t.ID,
		Status:       t.Status,
		OpenedAt:     t.OpenedAt,
		Description:  t.Description,
		PendingSince: t.PendingSince,
	}
}

func ticketResponses(tickets []domain.Ticket) []dto.TicketResponse {
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return items
}
