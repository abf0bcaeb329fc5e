package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-kit/request-service/internal/api/dto"
	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/service"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	workflow *service.TicketWorkflow
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(workflow *service.TicketWorkflow) *TicketsHandler {
	return &TicketsHandler{workflow: workflow}
}

// CreateTicket POST /ticket.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.workflow.CreateTicket(c.UserContext(), service.TicketCreateInput{
		Subject:     req.Subject,
		Description: req.Description,
		ContactID:   req.ContactID,
		AgentID:     req.AgentID,
		Priority:    domain.TicketPriority(req.Priority),
	})
	if err != nil {
		return err
	}
	return ok(c, dto.NewTicketResponse(ticket))
}

// ListTickets GET /ticket.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.workflow.ListTickets(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, dto.NewTicketResponses(tickets))
}

// GetTicket GET /ticket/:ticketId.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.workflow.GetTicket(c.UserContext(), c.Params("ticketId"))
	if err != nil {
		return err
	}
	return ok(c, dto.NewTicketResponse(ticket))
}

// DeleteTicket DELETE /ticket/:ticketId.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	ticketID := c.Params("ticketId")
	if err := h.workflow.DeleteTicket(c.UserContext(), ticketID); err != nil {
		return err
	}
	return ok(c, fmt.Sprintf("Ticket id %s is deleted", ticketID))
}

// ListTicketsByContact GET /userTickets/:contactId.
func (h *TicketsHandler) ListTicketsByContact(c *fiber.Ctx) error {
	tickets, err := h.workflow.ListTicketsByContact(c.UserContext(), c.Params("contactId"))
	if err != nil {
		return err
	}
	return ok(c, dto.NewTicketResponses(tickets))
}
