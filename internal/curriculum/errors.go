package curriculum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/syllabus/internal/types"
)

// Mutation error kinds. A failed mutation returns a *MutationError whose Kind
// is one of these, so callers can match with errors.Is.
var (
	ErrAlreadyPlaced   = errors.New("subject is already placed on this board")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrUnknownSubject  = errors.New("unknown subject")
)

// Prerequisite graph and session errors
var (
	ErrCircularPrerequisite = errors.New("circular prerequisite detected")
	ErrSelfPrerequisite     = errors.New("circular prerequisite: subject cannot require itself")
	ErrNothingToUndo        = errors.New("nothing to undo")
	ErrInconsistentBoard    = errors.New("board is inconsistent")
)

// MutationError describes a rejected board mutation. The board the mutation
// was applied to is left untouched.
type MutationError struct {
	Op        string
	Kind      error
	ColumnID  types.ColumnID
	SubjectID types.SubjectID
	Index     int
}

func (e *MutationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())

	var details []string
	if e.SubjectID != "" {
		details = append(details, "subject "+string(e.SubjectID))
	}
	if e.ColumnID != "" {
		details = append(details, "column "+string(e.ColumnID))
	}
	if errors.Is(e.Kind, ErrIndexOutOfRange) {
		details = append(details, fmt.Sprintf("index %d", e.Index))
	}
	if len(details) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(details, ", "))
		b.WriteString(")")
	}
	return b.String()
}

func (e *MutationError) Unwrap() error {
	return e.Kind
}

func unknownColumn(op string, id types.ColumnID) error {
	return &MutationError{Op: op, Kind: ErrUnknownColumn, ColumnID: id}
}

func outOfRange(op string, id types.ColumnID, index int) error {
	return &MutationError{Op: op, Kind: ErrIndexOutOfRange, ColumnID: id, Index: index}
}
