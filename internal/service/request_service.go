package service

import (
	"context"

	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/repository"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

// RequestService exposes the read side of the requests ledger. Ledger
// entries are only ever written by TicketWorkflow; there is no endpoint that
// creates a "Service Request" typed entry, the type exists in the store only.
type RequestService struct {
	requests repository.RequestRepository
}

// NewRequestService constructs the service.
func NewRequestService(requests repository.RequestRepository) *RequestService {
	return &RequestService{requests: requests}
}

// ListRequests returns every ledger entry.
func (s *RequestService) ListRequests(ctx context.Context) ([]domain.Request, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return requests, nil
}

// ListRequestsByContact returns the ledger entries for one contact.
func (s *RequestService) ListRequestsByContact(ctx context.Context, contactID string) ([]domain.Request, error) {
	requests, err := s.requests.ListByContact(ctx, contactID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return requests, nil
}
