package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/models"
)

// Board-related errors
var (
	// Validation errors
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidSemesters = errors.New("semester count out of range")

	// Business logic errors
	ErrBoardNotFound        = errors.New("board not found")
	ErrPrerequisiteWarnings = errors.New("change introduces prerequisite warnings")
	ErrNothingToUndo        = curriculum.ErrNothingToUndo
)

// WarningsError rejects a change that would add prerequisite warnings while
// validation.block_on_warnings is set. It matches ErrPrerequisiteWarnings.
type WarningsError struct {
	Warnings []models.Warning
}

func (e *WarningsError) Error() string {
	return fmt.Sprintf("%s (%d new)", ErrPrerequisiteWarnings, len(e.Warnings))
}

func (e *WarningsError) Unwrap() error {
	return ErrPrerequisiteWarnings
}
