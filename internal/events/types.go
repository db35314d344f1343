package events

import (
	"time"

	"github.com/thenoetrevino/syllabus/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardSaved      EventType = "board_saved"
	EventBoardDeleted    EventType = "board_deleted"
	EventSubjectsChanged EventType = "subjects_changed"
	EventTrackChanged    EventType = "track_changed"
)

// Event represents a change notification
type Event struct {
	Type       EventType
	BoardID    types.BoardID // For filtering - empty means not board specific
	Timestamp  time.Time     // When the event was delivered
	SequenceID int64         // Monotonically increasing sequence number for ordering
}

// matches reports whether a listener filtered on boardID should see the event
func (e Event) matches(boardID types.BoardID) bool {
	return boardID == "" || e.BoardID == "" || e.BoardID == boardID
}
