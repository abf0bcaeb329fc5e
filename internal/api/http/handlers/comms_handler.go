package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-kit/request-service/internal/api/dto"
	"github.com/helpdesk-kit/request-service/internal/service"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

// CommsHandler manages thread endpoints.
type CommsHandler struct {
	service *service.CommsService
}

// NewCommsHandler constructs handler.
func NewCommsHandler(commsService *service.CommsService) *CommsHandler {
	return &CommsHandler{service: commsService}
}

// PostMessage POST /comms/:ticketId.
func (h *CommsHandler) PostMessage(c *fiber.Ctx) error {
	var req dto.PostMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.service.PostMessage(c.UserContext(), c.Params("ticketId"), req.SenderID, req.Message)
	if err != nil {
		return err
	}
	return ok(c, dto.NewAppendResultResponse(result))
}

// GetThread GET /comms/:ticketId.
func (h *CommsHandler) GetThread(c *fiber.Ctx) error {
	comms, err := h.service.GetThread(c.UserContext(), c.Params("ticketId"))
	if err != nil {
		return err
	}
	return ok(c, dto.NewCommsResponse(comms))
}
