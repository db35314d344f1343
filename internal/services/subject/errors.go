package subject

import "errors"

// Subject-related errors
var (
	// Validation errors
	ErrInvalidSubject      = errors.New("invalid subject")
	ErrUnknownPrerequisite = errors.New("prerequisite is not a registered subject")
	ErrInvalidImport       = errors.New("invalid subject import")

	// Business logic errors
	ErrSubjectNotFound = errors.New("subject not found")
	ErrSubjectExists   = errors.New("subject already exists")
	ErrSubjectInUse    = errors.New("subject is placed on a board or required by another subject")
)
