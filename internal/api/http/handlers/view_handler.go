package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-tracker/internal/api/dto"
	"github.com/spec-kit/ticket-tracker/internal/service"
	"github.com/spec-kit/ticket-tracker/internal/viewstate"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

// ViewHandler exposes the view controller over HTTP so a thin client can
// keep its navigation state server-side.
type ViewHandler struct {
	service *service.TicketService
	views   *viewstate.Controller
}

// NewViewHandler constructs handler.
func NewViewHandler(ticketService *service.TicketService, views *viewstate.Controller) *ViewHandler {
	return &ViewHandler{service: ticketService, views: views}
}

// GetView GET /api/view.
func (h *ViewHandler) GetView(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.views.Snapshot()})
}

// SelectView POST /api/view. Choosing "edit" on a table row posts the form
// view with an editingId; any other selection clears the edit reference.
func (h *ViewHandler) SelectView(c *fiber.Ctx) error {
	var req dto.SelectViewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if req.EditingID != nil {
		if viewstate.View(req.View) != viewstate.ViewForm {
			return apperrors.NewValidationError("editingId is only valid for the form view", nil)
		}
		if _, err := h.service.Get(*req.EditingID); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": h.views.Edit(*req.EditingID)})
	}

	state, err := h.views.Select(viewstate.View(req.View))
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return c.JSON(fiber.Map{"data": state})
}
