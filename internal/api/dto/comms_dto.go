package dto

import (
	"time"

	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/service"
)

// PostMessageRequest payload.
type PostMessageRequest struct {
	SenderID string `json:"senderId"`
	Message  string `json:"message"`
}

// AppendResultResponse reports a successful message append.
type AppendResultResponse struct {
	Threads  int64          `json:"threads"`
	Appended domain.Message `json:"appended"`
}

// CommsResponse is the full thread for a ticket.
type CommsResponse struct {
	ID                string           `json:"id"`
	TicketOrRequestID string           `json:"ticketOrRequestId"`
	Messages          []domain.Message `json:"messages"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// NewAppendResultResponse maps an append outcome.
func NewAppendResultResponse(result *service.AppendResult) AppendResultResponse {
	return AppendResultResponse{
		Threads:  result.Threads,
		Appended: result.Appended,
	}
}

// NewCommsResponse maps a domain thread.
func NewCommsResponse(comms *domain.Comms) CommsResponse {
	messages := comms.Messages
	if messages == nil {
		messages = []domain.Message{}
	}
	return CommsResponse{
		ID:                comms.ID,
		TicketOrRequestID: comms.TicketOrRequestID,
		Messages:          messages,
		CreatedAt:         comms.CreatedAt,
	}
}
