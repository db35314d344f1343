package track

import "errors"

// Track-related errors
var (
	// Validation errors
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNameTooLong   = errors.New("name is too long")
	ErrEmptyStepName = errors.New("step name cannot be empty")

	// Business logic errors
	ErrTrackNotFound = errors.New("track not found")
	ErrTrackExists   = errors.New("a track with this name already exists")
	ErrNoSteps       = errors.New("track has no steps")
)
