package events

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/thenoetrevino/syllabus/internal/types"
)

var (
	ErrBusClosed = errors.New("event bus is closed")
	ErrQueueFull = errors.New("event queue full")
)

// DefaultDebounce is the batching window when SYLLABUS_EVENT_DEBOUNCE_MS is unset
const DefaultDebounce = 100 * time.Millisecond

type listener struct {
	ch      chan Event
	boardID types.BoardID
}

type batchKey struct {
	typ     EventType
	boardID types.BoardID
}

// Bus is an in-process EventPublisher. Events sent within one debounce window
// are coalesced (identical type and board are delivered once) and fanned out
// to every listener whose board filter matches.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]*listener
	nextID    int
	filter    types.BoardID
	sequence  int64
	closed    bool

	queue    chan Event
	debounce time.Duration
	done     chan struct{}
}

// NewBus starts a bus with the given debounce window (<= 0 uses the
// environment or DefaultDebounce)
func NewBus(debounce time.Duration) *Bus {
	if debounce <= 0 {
		debounce = debounceFromEnv()
	}
	b := &Bus{
		listeners: make(map[int]*listener),
		queue:     make(chan Event, 100),
		debounce:  debounce,
		done:      make(chan struct{}),
	}
	go b.batch()
	return b
}

func debounceFromEnv() time.Duration {
	if envVal := os.Getenv("SYLLABUS_EVENT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Millisecond
		}
	}
	return DefaultDebounce
}

// SendEvent queues an event without blocking
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	select {
	case b.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe sets the board filter for listeners created afterwards
func (b *Bus) Subscribe(boardID types.BoardID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.filter = boardID
	return nil
}

// Listen registers a listener with the current board filter
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBusClosed
	}

	id := b.nextID
	b.nextID++
	l := &listener{ch: make(chan Event, 10), boardID: b.filter}
	b.listeners[id] = l

	go func() {
		select {
		case <-ctx.Done():
			b.removeListener(id)
		case <-b.done:
		}
	}()

	return l.ch, nil
}

func (b *Bus) removeListener(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if l, ok := b.listeners[id]; ok {
		close(l.ch)
		delete(b.listeners, id)
	}
}

// batch runs in a goroutine, collecting queued events and flushing them
// once per debounce window
func (b *Bus) batch() {
	ticker := time.NewTicker(b.debounce)
	defer ticker.Stop()

	var pending []Event
	seen := make(map[batchKey]bool)

	flush := func() {
		if len(pending) > 0 {
			b.deliver(pending)
			pending = nil
			clear(seen)
		}
	}

	for {
		select {
		case event, ok := <-b.queue:
			if !ok {
				// Queue closed by Close - flush and exit
				flush()
				b.closeListeners()
				close(b.done)
				return
			}
			key := batchKey{typ: event.Type, boardID: event.BoardID}
			if !seen[key] {
				seen[key] = true
				pending = append(pending, event)
			}

		case <-ticker.C:
			flush()
		}
	}
}

func (b *Bus) deliver(batch []Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	for _, event := range batch {
		b.sequence++
		event.SequenceID = b.sequence
		event.Timestamp = now
		for _, l := range b.listeners {
			if !event.matches(l.boardID) {
				continue
			}
			select {
			case l.ch <- event:
			default:
				slog.Debug("dropping event for slow listener",
					"event_type", event.Type,
					"board_id", event.BoardID)
			}
		}
	}
}

func (b *Bus) closeListeners() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, l := range b.listeners {
		close(l.ch)
		delete(b.listeners, id)
	}
}

// Close flushes pending events, closes every listener channel and stops the bus.
// Calling Close more than once is safe.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	<-b.done
	return nil
}
