package domain

import "time"

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// ValidPriority reports whether p is one of the defined levels.
// The empty value is allowed; priority is optional on a ticket.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case "", TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// TicketDetail is the support ticket record.
type TicketDetail struct {
	ID          string
	Subject     string
	Description string
	ContactID   string
	AgentID     *string
	Priority    TicketPriority
	CreatedAt   time.Time
}
