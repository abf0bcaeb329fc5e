package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-kit/request-service/internal/domain"
	"github.com/helpdesk-kit/request-service/internal/repository"
	apperrors "github.com/helpdesk-kit/request-service/pkg/util"
)

func senderRepo() *mockContactRepository {
	return &mockContactRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Contact, error) {
			if id == "SENDER" {
				return &domain.Contact{ID: "SENDER", Name: "A", Email: "a@x.com"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
}

func TestCommsService_PostMessage(t *testing.T) {
	t.Run("snapshots sender name and stamps server time", func(t *testing.T) {
		var appended domain.Message
		comms := &mockCommsRepository{
			AppendMessageFunc: func(ctx context.Context, ticketOrRequestID string, msg domain.Message) (int64, error) {
				appended = msg
				return 1, nil
			},
		}
		svc := NewCommsService(comms, senderRepo(), nil)

		before := time.Now().UTC()
		result, err := svc.PostMessage(context.Background(), "T1", "SENDER", "hi")
		require.NoError(t, err)

		assert.Equal(t, int64(1), result.Threads)
		assert.Equal(t, "T1", appended.TicketID)
		assert.Equal(t, "SENDER", appended.SenderID)
		assert.Equal(t, "A", appended.SenderName)
		assert.Equal(t, "hi", appended.Message)
		assert.NotEmpty(t, appended.ID)
		assert.False(t, appended.Timestamp.Before(before))
	})

	t.Run("unknown sender fails without touching the thread", func(t *testing.T) {
		comms := &mockCommsRepository{
			AppendMessageFunc: func(ctx context.Context, ticketOrRequestID string, msg domain.Message) (int64, error) {
				t.Fatal("no append expected")
				return 0, nil
			},
		}
		svc := NewCommsService(comms, senderRepo(), nil)

		_, err := svc.PostMessage(context.Background(), "T1", "GHOST", "hi")
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "SENDER_NOT_FOUND", domainErr.Code)
		assert.Equal(t, 404, domainErr.HTTPStatus)
	})

	t.Run("zero matched threads is thread not found", func(t *testing.T) {
		comms := &mockCommsRepository{
			AppendMessageFunc: func(ctx context.Context, ticketOrRequestID string, msg domain.Message) (int64, error) {
				return 0, nil
			},
		}
		svc := NewCommsService(comms, senderRepo(), nil)

		_, err := svc.PostMessage(context.Background(), "NO-THREAD", "SENDER", "hi")
		require.Error(t, err)
		assert.Equal(t, "THREAD_NOT_FOUND", apperrors.ToDomainError(err).Code)
	})

	t.Run("missing sender or body fails validation", func(t *testing.T) {
		svc := NewCommsService(&mockCommsRepository{}, senderRepo(), nil)

		_, err := svc.PostMessage(context.Background(), "T1", "", "hi")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

		_, err = svc.PostMessage(context.Background(), "T1", "SENDER", "   ")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	})

	t.Run("two appends arrive in order", func(t *testing.T) {
		thread := []domain.Message{}
		comms := &mockCommsRepository{
			AppendMessageFunc: func(ctx context.Context, ticketOrRequestID string, msg domain.Message) (int64, error) {
				thread = append(thread, msg)
				return 1, nil
			},
		}
		svc := NewCommsService(comms, senderRepo(), nil)

		_, err := svc.PostMessage(context.Background(), "T1", "SENDER", "first")
		require.NoError(t, err)
		_, err = svc.PostMessage(context.Background(), "T1", "SENDER", "second")
		require.NoError(t, err)

		require.Len(t, thread, 2)
		assert.Equal(t, "first", thread[0].Message)
		assert.Equal(t, "second", thread[1].Message)
		assert.Equal(t, "A", thread[0].SenderName)
		assert.Equal(t, "A", thread[1].SenderName)
	})
}

func TestCommsService_GetThread(t *testing.T) {
	comms := &mockCommsRepository{
		GetThreadFunc: func(ctx context.Context, ticketOrRequestID string) (*domain.Comms, error) {
			if ticketOrRequestID == "T1" {
				return &domain.Comms{ID: "C1", TicketOrRequestID: "T1", Messages: []domain.Message{}}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewCommsService(comms, senderRepo(), nil)

	thread, err := svc.GetThread(context.Background(), "T1")
	require.NoError(t, err)
	assert.Empty(t, thread.Messages)

	_, err = svc.GetThread(context.Background(), "T2")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
