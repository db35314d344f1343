package models

import "github.com/thenoetrevino/syllabus/internal/types"

// Warning reasons reported by the prerequisite validator
const (
	ReasonScheduledAfter = "scheduled after dependent"
	ReasonMissing        = "missing"
)

// Warning is an advisory about a prerequisite placement. It never blocks a save.
type Warning struct {
	SubjectID      types.SubjectID `json:"subject_id"`
	PrerequisiteID types.SubjectID `json:"prerequisite_id"`
	Reason         string          `json:"reason"`
}
