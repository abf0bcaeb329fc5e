package domain

import "time"

// Message is one entry in a comms thread. Messages are embedded in the
// thread document rather than stored as top-level records; SenderName is a
// snapshot of the contact's name at send time, not a live join.
type Message struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticketId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Timestamp  time.Time `json:"timestamp"`
	Message    string    `json:"message"`
}

// Comms is the ordered, append-only message history attached to one ticket.
type Comms struct {
	ID                string
	TicketOrRequestID string
	Messages          []Message
	CreatedAt         time.Time
}
