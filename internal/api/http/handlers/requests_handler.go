package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-kit/request-service/internal/api/dto"
	"github.com/helpdesk-kit/request-service/internal/service"
)

// RequestsHandler exposes the requests ledger.
type RequestsHandler struct {
	service *service.RequestService
}

// NewRequestsHandler constructs handler.
func NewRequestsHandler(requestService *service.RequestService) *RequestsHandler {
	return &RequestsHandler{service: requestService}
}

// ListRequests GET /request.
func (h *RequestsHandler) ListRequests(c *fiber.Ctx) error {
	requests, err := h.service.ListRequests(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, dto.NewRequestResponses(requests))
}

// ListRequestsByContact GET /request/:contactId.
func (h *RequestsHandler) ListRequestsByContact(c *fiber.Ctx) error {
	requests, err := h.service.ListRequestsByContact(c.UserContext(), c.Params("contactId"))
	if err != nil {
		return err
	}
	return ok(c, dto.NewRequestResponses(requests))
}
