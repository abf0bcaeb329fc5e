package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-kit/request-service/internal/api/dto"
	"github.com/helpdesk-kit/request-service/internal/service"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

// ContactsHandler manages contact endpoints.
type ContactsHandler struct {
	service *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{service: contactService}
}

// CreateContact POST /contact.
func (h *ContactsHandler) CreateContact(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	contact, err := h.service.CreateContact(c.UserContext(), service.ContactCreateInput{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return ok(c, dto.NewContactResponse(contact))
}

// ListContacts GET /contact.
func (h *ContactsHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.service.ListContacts(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, dto.NewContactResponses(contacts))
}

// GetContactByEmail GET /contact/:email.
func (h *ContactsHandler) GetContactByEmail(c *fiber.Ctx) error {
	contact, err := h.service.GetContactByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return ok(c, dto.NewContactResponse(contact))
}
