// Package launcher runs the interactive track browser.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/syllabus/internal/app"
	"github.com/thenoetrevino/syllabus/internal/tui"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Browse opens the browser on a track and blocks until the user quits or
// the process receives an interrupt
func Browse(ctx context.Context, a *app.App, trackID types.TrackID) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model, err := tui.New(ctx, a, trackID)
	if err != nil {
		return err
	}

	slog.Info("browser starting", "track_id", trackID)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, browser closed")
			return nil
		}
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
