package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/syllabus/internal/events"
)

// subscribe returns a command that waits for the next event and turns it
// into a RefreshMsg. Returns nil if the model has no event channel.
func (m Model) subscribe() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	ch := m.eventChan
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// concerns reports whether an event may change what the browser shows
func (m Model) concerns(event events.Event) bool {
	switch event.Type {
	case events.EventTrackChanged, events.EventSubjectsChanged:
		return true
	}
	if event.BoardID == "" {
		return true
	}
	id, ok := m.currentBoardID()
	return ok && id == event.BoardID
}
