package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/syllabus/internal/types"
)

const testDebounce = 10 * time.Millisecond

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed before event arrived")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertQuiet(t *testing.T, ch <-chan Event) {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if ok {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(5 * testDebounce):
	}
}

func TestBus_DeliversToListener(t *testing.T) {
	bus := NewBus(testDebounce)
	defer func() { _ = bus.Close() }()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventBoardSaved, BoardID: "board-1"}))

	ev := receive(t, ch)
	assert.Equal(t, EventBoardSaved, ev.Type)
	assert.Equal(t, types.BoardID("board-1"), ev.BoardID)
	assert.Equal(t, int64(1), ev.SequenceID)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestBus_CoalescesIdenticalEventsInWindow(t *testing.T) {
	bus := NewBus(50 * time.Millisecond)
	defer func() { _ = bus.Close() }()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	for range 5 {
		require.NoError(t, bus.SendEvent(Event{Type: EventBoardSaved, BoardID: "board-1"}))
	}
	require.NoError(t, bus.SendEvent(Event{Type: EventSubjectsChanged}))

	first := receive(t, ch)
	second := receive(t, ch)
	assert.Equal(t, EventBoardSaved, first.Type)
	assert.Equal(t, EventSubjectsChanged, second.Type)
	assert.Less(t, first.SequenceID, second.SequenceID)
	assertQuiet(t, ch)
}

func TestBus_SubscribeFiltersByBoard(t *testing.T) {
	bus := NewBus(testDebounce)
	defer func() { _ = bus.Close() }()

	require.NoError(t, bus.Subscribe("board-1"))
	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventBoardSaved, BoardID: "board-2"}))
	assertQuiet(t, ch)

	require.NoError(t, bus.SendEvent(Event{Type: EventBoardSaved, BoardID: "board-1"}))
	assert.Equal(t, types.BoardID("board-1"), receive(t, ch).BoardID)

	// Events without a board reach every listener
	require.NoError(t, bus.SendEvent(Event{Type: EventSubjectsChanged}))
	assert.Equal(t, EventSubjectsChanged, receive(t, ch).Type)
}

func TestBus_ListenerClosedWhenContextDone(t *testing.T) {
	bus := NewBus(testDebounce)
	defer func() { _ = bus.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Listen(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("listener channel not closed after cancel")
	}
}

func TestBus_CloseFlushesAndRejects(t *testing.T) {
	bus := NewBus(time.Hour)

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)
	require.NoError(t, bus.SendEvent(Event{Type: EventTrackChanged}))

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	ev, ok := <-ch
	require.True(t, ok, "pending event should be flushed on close")
	assert.Equal(t, EventTrackChanged, ev.Type)
	_, ok = <-ch
	assert.False(t, ok)

	assert.ErrorIs(t, bus.SendEvent(Event{Type: EventBoardSaved}), ErrBusClosed)
	_, err = bus.Listen(context.Background())
	assert.ErrorIs(t, err, ErrBusClosed)
	assert.ErrorIs(t, bus.Subscribe("board-1"), ErrBusClosed)
}

func TestDebounceFromEnv(t *testing.T) {
	t.Setenv("SYLLABUS_EVENT_DEBOUNCE_MS", "250")
	assert.Equal(t, 250*time.Millisecond, debounceFromEnv())

	t.Setenv("SYLLABUS_EVENT_DEBOUNCE_MS", "nope")
	assert.Equal(t, DefaultDebounce, debounceFromEnv())
}
