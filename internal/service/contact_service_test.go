package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/events"
	"github.com/helpdesk-kit/request-service/internal/repository"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

func TestContactService_CreateContact(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockContactRepository{
			CreateFunc: func(ctx context.Context, contact *domain.Contact) error {
				contact.ID = "C1"
				return nil
			},
		}
		dispatcher := &mockDispatcher{}
		svc := NewContactService(repo, dispatcher)

		phone := int64(5551234)
		contact, err := svc.CreateContact(context.Background(), ContactCreateInput{
			Email: " a@x.com ",
			Name:  "A",
			Phone: &phone,
		})
		require.NoError(t, err)
		assert.Equal(t, "C1", contact.ID)
		assert.Equal(t, "a@x.com", contact.Email, "email is trimmed before persistence")

		require.Len(t, dispatcher.published, 1)
		assert.Equal(t, events.EventContactCreated, dispatcher.published[0].Type)
	})

	t.Run("missing fields fail without a write", func(t *testing.T) {
		repo := &mockContactRepository{
			CreateFunc: func(ctx context.Context, contact *domain.Contact) error {
				t.Fatal("no write expected")
				return nil
			},
		}
		svc := NewContactService(repo, nil)

		for _, input := range []ContactCreateInput{
			{Name: "A"},
			{Email: "a@x.com"},
			{Email: "   ", Name: "  "},
		} {
			_, err := svc.CreateContact(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
		}
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := &mockContactRepository{
			CreateFunc: func(ctx context.Context, contact *domain.Contact) error {
				return repository.ErrDuplicate
			},
		}
		svc := NewContactService(repo, nil)

		_, err := svc.CreateContact(context.Background(), ContactCreateInput{Email: "a@x.com", Name: "A2"})
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "DUPLICATE_EMAIL", domainErr.Code)
		assert.Equal(t, 409, domainErr.HTTPStatus)
	})
}

func TestContactService_GetContactByEmail(t *testing.T) {
	repo := &mockContactRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.Contact, error) {
			if email == "a@x.com" {
				return &domain.Contact{ID: "C1", Email: email, Name: "A"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewContactService(repo, nil)

	contact, err := svc.GetContactByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "C1", contact.ID)

	_, err = svc.GetContactByEmail(context.Background(), "b@x.com")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
