package dto

import (
	"time"

	"github.com/helpdesk-kit/request-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	ContactID   string  `json:"contactId"`
	AgentID     *string `json:"agentId"`
	Priority    string  `json:"priority"`
}

// TicketResponse response.
type TicketResponse struct {
	ID          string                `json:"id"`
	Subject     string                `json:"subject"`
	Description string                `json:"description,omitempty"`
	ContactID   string                `json:"contactId"`
	AgentID     *string               `json:"agentId,omitempty"`
	Priority    domain.TicketPriority `json:"priority,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.TicketDetail) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		ContactID:   ticket.ContactID,
		AgentID:     ticket.AgentID,
		Priority:    ticket.Priority,
		CreatedAt:   ticket.CreatedAt,
	}
}

// NewTicketResponses maps a slice of domain tickets.
func NewTicketResponses(tickets []domain.TicketDetail) []TicketResponse {
	items := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, NewTicketResponse(&tickets[i]))
	}
	return items
}
