package service

import (
	"context"
	"errors"
	"strings"

	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/events"
	"github.com/helpdesk-kit/request-service/internal/repository"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

// ContactService manages contact registration and lookup.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// ContactCreateInput describes contact registration payload.
type ContactCreateInput struct {
	Email string
	Name  string
	Phone *int64
}

// NewContactService constructs the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// CreateContact registers a new contact. Email uniqueness is enforced by the
// storage-level unique index, so concurrent duplicate submissions cannot both
// land; the conflict surfaces as a duplicate-email error.
func (s *ContactService) CreateContact(ctx context.Context, input ContactCreateInput) (*domain.Contact, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	missing := map[string]any{}
	if email == "" {
		missing["email"] = "required"
	}
	if name == "" {
		missing["name"] = "required"
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("email and name are required", missing)
	}

	contact := &domain.Contact{
		Email: email,
		Name:  name,
		Phone: input.Phone,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewDuplicateEmail(email)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type: events.EventContactCreated,
			Payload: events.ContactCreatedPayload{
				ContactID: contact.ID,
				Email:     contact.Email,
			},
		})
	}
	return contact, nil
}

// ListContacts returns all contacts.
func (s *ContactService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return contacts, nil
}

// GetContactByEmail performs an exact (case-insensitive) email lookup.
func (s *ContactService) GetContactByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	contact, err := s.contacts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("contact", map[string]any{"email": email})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return contact, nil
}
