package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/events"
	"github.com/helpdesk-kit/request-service/internal/repository"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

// TicketWorkflow coordinates the cross-store sequence behind ticket creation
// and deletion. Every successfully created ticket gets exactly one request
// ledger entry and one comms thread.
//
// Consistency policy: strong. The three writes run sequentially (the request
// and thread reference the generated ticket id); if a follow-up write fails,
// the already-committed records are compensated away so the caller observes
// "nothing committed". Only when the compensation itself fails does the
// caller get a partial-failure error naming the orphaned ticket, which is
// what reconciliation tooling should alert on.
type TicketWorkflow struct {
	tickets    repository.TicketRepository
	requests   repository.RequestRepository
	comms      repository.CommsRepository
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// WorkflowDependencies bundles repositories for the workflow.
type WorkflowDependencies struct {
	TicketRepo  repository.TicketRepository
	RequestRepo repository.RequestRepository
	CommsRepo   repository.CommsRepository
	ContactRepo repository.ContactRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject     string
	Description string
	ContactID   string
	AgentID     *string
	Priority    domain.TicketPriority
}

// NewTicketWorkflow constructs the workflow.
func NewTicketWorkflow(deps WorkflowDependencies) *TicketWorkflow {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketWorkflow{
		tickets:    deps.TicketRepo,
		requests:   deps.RequestRepo,
		comms:      deps.CommsRepo,
		contacts:   deps.ContactRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// CreateTicket validates input, persists the ticket, then fans out the
// request ledger entry and the empty comms thread.
func (w *TicketWorkflow) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.TicketDetail, error) {
	subject := strings.TrimSpace(input.Subject)
	missing := map[string]any{}
	if subject == "" {
		missing["subject"] = "required"
	}
	if strings.TrimSpace(input.ContactID) == "" {
		missing["contactId"] = "required"
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("subject and contactId are required", missing)
	}
	if !domain.ValidPriority(input.Priority) {
		return nil, apperrors.NewValidationError("priority must be one of low, medium, high, urgent",
			map[string]any{"priority": string(input.Priority)})
	}

	contact, err := w.contacts.GetByID(ctx, input.ContactID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewValidationError("contactId does not resolve to a contact",
				map[string]any{"contactId": input.ContactID})
		}
		return nil, apperrors.NewInternalError(err)
	}

	ticket := &domain.TicketDetail{
		Subject:     subject,
		Description: strings.TrimSpace(input.Description),
		ContactID:   contact.ID,
		AgentID:     input.AgentID,
		Priority:    input.Priority,
	}
	if err := w.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	request := &domain.Request{
		RequestType:       domain.RequestTypeTicket,
		ContactID:         contact.ID,
		TicketOrRequestID: ticket.ID,
	}
	if err := w.requests.Create(ctx, request); err != nil {
		return nil, w.compensate(ctx, ticket.ID, false, err)
	}

	if _, err := w.comms.Create(ctx, ticket.ID); err != nil {
		return nil, w.compensate(ctx, ticket.ID, true, err)
	}

	if w.dispatcher != nil {
		_ = w.dispatcher.Publish(ctx, events.Event{
			Type: events.EventTicketCreated,
			Payload: events.TicketCreatedPayload{
				TicketID:  ticket.ID,
				ContactID: ticket.ContactID,
				Subject:   ticket.Subject,
				Priority:  ticket.Priority,
			},
		})
	}
	return ticket, nil
}

// compensate unwinds the records committed before cause was hit, so a failed
// creation leaves nothing behind. requestCommitted tells whether the ledger
// entry made it in before the failure.
func (w *TicketWorkflow) compensate(ctx context.Context, ticketID string, requestCommitted bool, cause error) error {
	w.logger.Warn("ticket creation follow-up failed, rolling back",
		zap.String("ticket_id", ticketID), zap.Error(cause))

	if requestCommitted {
		if err := w.requests.DeleteByTicketOrRequestID(ctx, ticketID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			w.logger.Error("rollback of request ledger entry failed",
				zap.String("ticket_id", ticketID), zap.Error(err))
			return apperrors.NewPartialFailure(ticketID, cause)
		}
	}
	if err := w.tickets.Delete(ctx, ticketID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		w.logger.Error("rollback of ticket failed",
			zap.String("ticket_id", ticketID), zap.Error(err))
		return apperrors.NewPartialFailure(ticketID, cause)
	}
	return apperrors.NewInternalError(cause)
}

// DeleteTicket removes the ticket and its request ledger entry. The comms
// thread is intentionally kept; whether to cascade is a product decision
// that has not been made, and keeping threads preserves message history.
func (w *TicketWorkflow) DeleteTicket(ctx context.Context, id string) error {
	if err := w.tickets.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return apperrors.NewInternalError(err)
	}

	if err := w.requests.DeleteByTicketOrRequestID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// orphan from a past partial failure; the ticket itself is gone
			w.logger.Warn("no request ledger entry for deleted ticket", zap.String("ticket_id", id))
		} else {
			return apperrors.NewInternalError(err)
		}
	}

	if w.dispatcher != nil {
		_ = w.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventTicketDeleted,
			Payload: events.TicketDeletedPayload{TicketID: id},
		})
	}
	return nil
}

// ListTickets returns all tickets.
func (w *TicketWorkflow) ListTickets(ctx context.Context) ([]domain.TicketDetail, error) {
	tickets, err := w.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return tickets, nil
}

// GetTicket fetches one ticket by id.
func (w *TicketWorkflow) GetTicket(ctx context.Context, id string) (*domain.TicketDetail, error) {
	ticket, err := w.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return ticket, nil
}

// ListTicketsByContact returns the tickets submitted by one contact. No
// matches is an empty list, not an error.
func (w *TicketWorkflow) ListTicketsByContact(ctx context.Context, contactID string) ([]domain.TicketDetail, error) {
	tickets, err := w.tickets.ListByContact(ctx, contactID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return tickets, nil
}
