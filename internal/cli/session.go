package cli

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Open returns the CLI for a command, reporting initialization failures
// through the formatter
func Open(ctx context.Context, formatter *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("error formatting error message", "error", fmtErr)
		}
		return nil, &ExitError{Code: ExitFailure, Err: err}
	}
	return cliInstance, nil
}

// CloseQuietly closes the CLI and logs a failure
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}

// TerminalWidth returns the width of stdout, or 0 when it is not a terminal
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
