package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher_Publish(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		Type:    EventTicketCreated,
		Payload: TicketCreatedPayload{TicketID: "T1", ContactID: "C1", Subject: "S"},
	})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.NotEmpty(t, received[0].ID, "publish assigns an event id")
	assert.False(t, received[0].Timestamp.IsZero(), "publish stamps the event")
}

func TestInMemoryDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var secondCalled bool
	dispatcher.Subscribe(EventMessagePosted, func(ctx context.Context, event Event) error {
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(EventMessagePosted, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventMessagePosted})
	require.NoError(t, err)
	assert.True(t, secondCalled)
}

func TestInMemoryDispatcher_OnlyMatchingTypeDelivered(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventTicketDeleted, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventTicketCreated}))
	assert.False(t, called)
}
