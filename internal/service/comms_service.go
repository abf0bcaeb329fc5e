package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/events"
	"github.com/helpdesk-kit/request-service/internal/repository"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

// CommsService manages message threads.
type CommsService struct {
	comms      repository.CommsRepository
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// AppendResult reports the outcome of a message append. Threads is the
// number of matching threads the message was pushed onto, so callers can
// always tell "appended" apart from "no such thread".
type AppendResult struct {
	Threads  int64
	Appended domain.Message
}

// NewCommsService constructs the service.
func NewCommsService(comms repository.CommsRepository, contacts repository.ContactRepository, dispatcher events.Dispatcher) *CommsService {
	return &CommsService{comms: comms, contacts: contacts, dispatcher: dispatcher}
}

// PostMessage appends a message to the thread for ticketOrRequestID. The
// sender id is resolved to a contact first so the sender name is snapshotted
// at send time; the timestamp is stamped server-side.
func (s *CommsService) PostMessage(ctx context.Context, ticketOrRequestID, senderID, body string) (*AppendResult, error) {
	body = strings.TrimSpace(body)
	missing := map[string]any{}
	if strings.TrimSpace(senderID) == "" {
		missing["senderId"] = "required"
	}
	if body == "" {
		missing["message"] = "required"
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("senderId and message are required", missing)
	}

	sender, err := s.contacts.GetByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewSenderNotFound(senderID)
		}
		return nil, apperrors.NewInternalError(err)
	}

	msg := domain.Message{
		ID:         uuid.NewString(),
		TicketID:   ticketOrRequestID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Timestamp:  time.Now().UTC(),
		Message:    body,
	}

	matched, err := s.comms.AppendMessage(ctx, ticketOrRequestID, msg)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if matched == 0 {
		return nil, apperrors.NewThreadNotFound(ticketOrRequestID)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type: events.EventMessagePosted,
			Payload: events.MessagePostedPayload{
				TicketID:    ticketOrRequestID,
				MessageID:   msg.ID,
				SenderID:    sender.ID,
				BodyPreview: stringPreview(body, 120),
			},
		})
	}
	return &AppendResult{Threads: matched, Appended: msg}, nil
}

// GetThread fetches the full thread for ticketOrRequestID.
func (s *CommsService) GetThread(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error) {
	comms, err := s.comms.GetThread(ctx, ticketOrRequestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("comms thread", map[string]any{"ticket_or_request_id": ticketOrRequestID})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return comms, nil
}

func stringPreview(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
