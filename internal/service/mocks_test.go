package service

import (
	"context"

	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/events"
)

type mockContactRepository struct {
	CreateFunc     func(ctx context.Context, contact *domain.Contact) error
	ListFunc       func(ctx context.Context) ([]domain.Contact, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Contact, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Contact, error)
}

func (m *mockContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactRepository) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockTicketRepository struct {
	CreateFunc        func(ctx context.Context, ticket *domain.TicketDetail) error
	ListFunc          func(ctx context.Context) ([]domain.TicketDetail, error)
	GetByIDFunc       func(ctx context.Context, id string) (*domain.TicketDetail, error)
	ListByContactFunc func(ctx context.Context, contactID string) ([]domain.TicketDetail, error)
	DeleteFunc        func(ctx context.Context, id string) error
}

func (m *mockTicketRepository) Create(ctx context.Context, ticket *domain.TicketDetail) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ticket)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]domain.TicketDetail, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*domain.TicketDetail, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByContact(ctx context.Context, contactID string) ([]domain.TicketDetail, error) {
	if m.ListByContactFunc != nil {
		return m.ListByContactFunc(ctx, contactID)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockRequestRepository struct {
	CreateFunc                    func(ctx context.Context, request *domain.Request) error
	ListFunc                      func(ctx context.Context) ([]domain.Request, error)
	ListByContactFunc             func(ctx context.Context, contactID string) ([]domain.Request, error)
	DeleteByTicketOrRequestIDFunc func(ctx context.Context, id string) error
}

func (m *mockRequestRepository) Create(ctx context.Context, request *domain.Request) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, request)
	}
	return nil
}

func (m *mockRequestRepository) List(ctx context.Context) ([]domain.Request, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRequestRepository) ListByContact(ctx context.Context, contactID string) ([]domain.Request, error) {
	if m.ListByContactFunc != nil {
		return m.ListByContactFunc(ctx, contactID)
	}
	return nil, nil
}

func (m *mockRequestRepository) DeleteByTicketOrRequestID(ctx context.Context, id string) error {
	if m.DeleteByTicketOrRequestIDFunc != nil {
		return m.DeleteByTicketOrRequestIDFunc(ctx, id)
	}
	return nil
}

type mockCommsRepository struct {
	CreateFunc        func(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error)
	AppendMessageFunc func(ctx context.Context, ticketOrRequestID string, msg domain.Message) (int64, error)
	GetThreadFunc     func(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error)
}

func (m *mockCommsRepository) Create(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ticketOrRequestID)
	}
	return &domain.Comms{TicketOrRequestID: ticketOrRequestID, Messages: []domain.Message{}}, nil
}

func (m *mockCommsRepository) AppendMessage(ctx context.Context, ticketOrRequestID string, msg domain.Message) (int64, error) {
	if m.AppendMessageFunc != nil {
		return m.AppendMessageFunc(ctx, ticketOrRequestID, msg)
	}
	return 1, nil
}

func (m *mockCommsRepository) GetThread(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error) {
	if m.GetThreadFunc != nil {
		return m.GetThreadFunc(ctx, ticketOrRequestID)
	}
	return nil, nil
}

type mockDispatcher struct {
	published []events.Event
}

func (m *mockDispatcher) Publish(ctx context.Context, event events.Event) error {
	m.published = append(m.published, event)
	return nil
}

func (m *mockDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}
