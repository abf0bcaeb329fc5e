package dto

import (
	"time"

	"github.com/helpdesk-kit/request-service/internal/domain"
)

// RequestResponse response.
type RequestResponse struct {
	ID                string             `json:"id"`
	RequestType       domain.RequestType `json:"requestType"`
	ContactID         string             `json:"contactId"`
	TicketOrRequestID string             `json:"ticketOrRequestId"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// NewRequestResponses maps a slice of domain requests.
func NewRequestResponses(requests []domain.Request) []RequestResponse {
	items := make([]RequestResponse, 0, len(requests))
	for _, request := range requests {
		items = append(items, RequestResponse{
			ID:                request.ID,
			RequestType:       request.RequestType,
			ContactID:         request.ContactID,
			TicketOrRequestID: request.TicketOrRequestID,
			CreatedAt:         request.CreatedAt,
		})
	}
	return items
}
