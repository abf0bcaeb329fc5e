package dto

import (
	"time"

	"github.com/helpdesk-kit/request-service/internal/domain"
)

// CreateContactRequest payload.
type CreateContactRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone *int64 `json:"phone"`
}

// ContactResponse response.
type ContactResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *int64    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContactResponse maps a domain contact.
func NewContactResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Email:     contact.Email,
		Name:      contact.Name,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
	}
}

// NewContactResponses maps a slice of domain contacts.
func NewContactResponses(contacts []domain.Contact) []ContactResponse {
	items := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, NewContactResponse(&contacts[i]))
	}
	return items
}
