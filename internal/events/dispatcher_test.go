package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesAllSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	handler := func(context.Context, Event) error {
		calls++
		return nil
	}
	d.Subscribe(EventQuoteReceived, handler)
	d.Subscribe(EventQuoteReceived, handler)

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventQuoteReceived}))
	require.Equal(t, 2, calls)
}

func TestDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")

	var calls []string
	d.Subscribe(EventQuoteReceived, func(context.Context, Event) error {
		calls = append(calls, "first")
		return boom
	})
	d.Subscribe(EventQuoteReceived, func(context.Context, Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventQuoteReceived})
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcher_UnsubscribedTypeIsNoOp(t *testing.T) {
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSubmissionDeleted}))
}
