package domain

import "time"

// RequestType distinguishes entries in the requests ledger.
type RequestType string

const (
	RequestTypeTicket         RequestType = "Ticket"
	RequestTypeServiceRequest RequestType = "Service Request"
)

// ValidRequestType reports whether t is an allowed request type.
func ValidRequestType(t RequestType) bool {
	return t == RequestTypeTicket || t == RequestTypeServiceRequest
}

// Request is a denormalized ledger entry unifying tickets (and, nominally,
// future service requests) for per-contact querying.
type Request struct {
	ID                string
	RequestType       RequestType
	ContactID         string
	TicketOrRequestID string
	CreatedAt         time.Time
}
