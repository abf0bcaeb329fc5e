package events

import (
	"time"

	"github.com/helpdesk-kit/request-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactCreated EventType = "contact_created"
	EventTicketCreated  EventType = "ticket_created"
	EventTicketDeleted  EventType = "ticket_deleted"
	EventMessagePosted  EventType = "message_posted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ContactCreatedPayload payload.
type ContactCreatedPayload struct {
	ContactID string `json:"contact_id"`
	Email     string `json:"email"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID  string                `json:"ticket_id"`
	ContactID string                `json:"contact_id"`
	Subject   string                `json:"subject"`
	Priority  domain.TicketPriority `json:"priority,omitempty"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	TicketID string `json:"ticket_id"`
}

// MessagePostedPayload payload.
type MessagePostedPayload struct {
	TicketID    string `json:"ticket_id"`
	MessageID   string `json:"message_id"`
	SenderID    string `json:"sender_id"`
	BodyPreview string `json:"body_preview"`
}
