package events

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// flakyPublisher fails a fixed number of sends before succeeding
type flakyPublisher struct {
	failures int
	err      error
	calls    int
	sent     []Event
}

func (p *flakyPublisher) SendEvent(event Event) error {
	p.calls++
	if p.calls <= p.failures {
		return p.err
	}
	p.sent = append(p.sent, event)
	return nil
}

func (p *flakyPublisher) Listen(context.Context) (<-chan Event, error) { return nil, nil }
func (p *flakyPublisher) Subscribe(types.BoardID) error              { return nil }
func (p *flakyPublisher) Close() error                               { return nil }

func TestPublishWithRetry(t *testing.T) {
	errSend := errors.New("send failed")
	event := Event{Type: EventBoardSaved, BoardID: "board-1"}

	tests := []struct {
		name      string
		failures  int
		err       error
		retries   int
		wantErr   error
		wantCalls int
	}{
		{name: "first attempt succeeds", failures: 0, retries: 3, wantCalls: 1},
		{name: "succeeds after retry", failures: 2, err: errSend, retries: 3, wantCalls: 3},
		{name: "all attempts fail", failures: 5, err: errSend, retries: 3, wantErr: errSend, wantCalls: 3},
		{name: "closed bus is not retried", failures: 5, err: ErrBusClosed, retries: 3, wantErr: ErrBusClosed, wantCalls: 1},
		{name: "wrapped closed bus is not retried", failures: 5, err: fmt.Errorf("sending board_saved: %w", ErrBusClosed), retries: 3, wantErr: ErrBusClosed, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &flakyPublisher{failures: tt.failures, err: tt.err}
			err := PublishWithRetry(pub, event, tt.retries)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, pub.sent)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, []Event{event}, pub.sent)
			}
			assert.Equal(t, tt.wantCalls, pub.calls)
		})
	}
}

func TestPublishWithRetry_NilClient(t *testing.T) {
	assert.NoError(t, PublishWithRetry(nil, Event{Type: EventBoardSaved}, 3))
}
