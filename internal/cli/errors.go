package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/services/board"
	"github.com/thenoetrevino/syllabus/internal/services/subject"
	"github.com/thenoetrevino/syllabus/internal/services/track"
)

// Usage errors raised by argument parsing
var (
	ErrInvalidPosition = errors.New("position must be a positive integer")
	ErrAmbiguousBoard  = errors.New("more than one board has this name")
	ErrMissingArgument = errors.New("missing argument")
)

// ExitError carries the process exit code of a failed command. The error
// has already been reported to the user when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, code := Classify(err)
	return code
}

type errorClass struct {
	target error
	code   string
	exit   int
}

// Ordered: the first matching class wins
var errorClasses = []errorClass{
	{board.ErrBoardNotFound, "BOARD_NOT_FOUND", ExitNotFound},
	{subject.ErrSubjectNotFound, "SUBJECT_NOT_FOUND", ExitNotFound},
	{track.ErrTrackNotFound, "TRACK_NOT_FOUND", ExitNotFound},
	{curriculum.ErrUnknownColumn, "COLUMN_NOT_FOUND", ExitNotFound},
	{curriculum.ErrUnknownSubject, "SUBJECT_NOT_FOUND", ExitNotFound},

	{curriculum.ErrAlreadyPlaced, "ALREADY_PLACED", ExitValidation},
	{curriculum.ErrIndexOutOfRange, "INDEX_OUT_OF_RANGE", ExitValidation},
	{curriculum.ErrSelfPrerequisite, "CIRCULAR_PREREQUISITE", ExitValidation},
	{curriculum.ErrCircularPrerequisite, "CIRCULAR_PREREQUISITE", ExitValidation},
	{board.ErrPrerequisiteWarnings, "PREREQUISITE_WARNINGS", ExitValidation},
	{board.ErrNothingToUndo, "NOTHING_TO_UNDO", ExitValidation},
	{subject.ErrUnknownPrerequisite, "UNKNOWN_PREREQUISITE", ExitValidation},
	{subject.ErrInvalidSubject, "INVALID_SUBJECT", ExitValidation},
	{subject.ErrSubjectExists, "SUBJECT_EXISTS", ExitValidation},
	{subject.ErrSubjectInUse, "SUBJECT_IN_USE", ExitValidation},
	{track.ErrTrackExists, "TRACK_EXISTS", ExitValidation},
	{track.ErrNoSteps, "TRACK_HAS_NO_STEPS", ExitValidation},
	{track.ErrEmptyStepName, "VALIDATION_ERROR", ExitValidation},
	{track.ErrEmptyName, "VALIDATION_ERROR", ExitValidation},
	{track.ErrNameTooLong, "VALIDATION_ERROR", ExitValidation},
	{board.ErrEmptyName, "VALIDATION_ERROR", ExitValidation},
	{board.ErrNameTooLong, "VALIDATION_ERROR", ExitValidation},
	{board.ErrInvalidSemesters, "VALIDATION_ERROR", ExitValidation},

	{subject.ErrInvalidImport, "INVALID_IMPORT", ExitDataErr},
	{config.ErrInvalidConfig, "INVALID_CONFIG", ExitDataErr},
	{curriculum.ErrInconsistentBoard, "INCONSISTENT_BOARD", ExitDataErr},

	{ErrInvalidPosition, "INVALID_POSITION", ExitUsage},
	{ErrAmbiguousBoard, "AMBIGUOUS_BOARD", ExitUsage},
	{ErrMissingArgument, "USAGE_ERROR", ExitUsage},
}

// Classify maps an error to its machine-readable code and exit code
func Classify(err error) (string, int) {
	for _, class := range errorClasses {
		if errors.Is(err, class.target) {
			return class.code, class.exit
		}
	}
	return "INTERNAL_ERROR", ExitFailure
}

// Fail reports err through the formatter and returns it as an *ExitError
func Fail(formatter *OutputFormatter, err error) error {
	code, exit := Classify(err)
	if exit == ExitFailure {
		slog.Error("command failed", "error", err)
	}
	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestionFor(code)); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return &ExitError{Code: exit, Err: err}
}

// Usagef reports a usage problem and returns it as an *ExitError
func Usagef(formatter *OutputFormatter, suggestion, format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{ErrMissingArgument}, args...)...)
	if fmtErr := formatter.ErrorWithSuggestion("USAGE_ERROR", fmt.Sprintf(format, args...), suggestion); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return &ExitError{Code: ExitUsage, Err: err}
}

func suggestionFor(code string) string {
	switch code {
	case "BOARD_NOT_FOUND":
		return "List boards with: syllabus board list"
	case "SUBJECT_NOT_FOUND":
		return "List subjects with: syllabus subject list"
	case "TRACK_NOT_FOUND":
		return "List tracks with: syllabus track list"
	case "COLUMN_NOT_FOUND":
		return "Refer to a semester by ID, 1-based position or title (syllabus board show <board>)"
	case "ALREADY_PLACED":
		return "Use 'syllabus place move' to move a placed subject"
	case "AMBIGUOUS_BOARD":
		return "Refer to the board by its ID"
	case "PREREQUISITE_WARNINGS":
		return "Check the plan with 'syllabus board validate' or unset validation.block_on_warnings"
	}
	return ""
}
