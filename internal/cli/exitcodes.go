package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, malformed positions, ambiguous names.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown board, column, subject or track.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Broken import files, unreadable configuration.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Subjects placed twice, out-of-range positions, prerequisite
	// cycles, names that break the configured limits.
	ExitValidation = 5
)
