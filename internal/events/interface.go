package events

import (
	"context"

	"github.com/thenoetrevino/syllabus/internal/types"
)

// EventPublisher defines the interface for sending and receiving events.
// Services depend on it rather than on the Bus so tests can record events.
type EventPublisher interface {
	// SendEvent queues an event for delivery to listeners
	SendEvent(event Event) error

	// Listen returns a channel of delivered events, closed when ctx is done
	// or the publisher is closed
	Listen(ctx context.Context) (<-chan Event, error)

	// Subscribe narrows listeners created afterwards to one board ("" = all)
	Subscribe(boardID types.BoardID) error

	// Close flushes pending events and stops delivery
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
