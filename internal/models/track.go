package models

import (
	"time"

	"github.com/thenoetrevino/syllabus/internal/types"
)

// Step is one section of a study track wizard (e.g. "Core", "Electives").
// BoardID is nil until a board is created for the step.
type Step struct {
	Name    string         `json:"name"`
	BoardID *types.BoardID `json:"board_id,omitempty"`
}

// Track is a persisted wizard: an ordered list of steps and the current position
type Track struct {
	ID          types.TrackID `json:"id"`
	Name        string        `json:"name"`
	Steps       []Step        `json:"steps"`
	CurrentStep int           `json:"current_step"`
	CreatedAt   time.Time     `json:"created_at,omitzero"`
}
