// Package tui implements the interactive track browser: one wizard step at a
// time, with the board of the current step rendered below the step bar.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/help"

	"github.com/thenoetrevino/syllabus/internal/app"
	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/events"
	"github.com/thenoetrevino/syllabus/internal/models"
	boardservice "github.com/thenoetrevino/syllabus/internal/services/board"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// RefreshMsg is sent when the event bus reports a change
type RefreshMsg struct {
	Event events.Event
}

// Model is the Bubble Tea model of the browser
type Model struct {
	ctx context.Context
	app *app.App

	trackID  types.TrackID
	track    *models.Track
	overview *boardservice.Overview

	keys KeyMap
	help help.Model

	eventChan <-chan events.Event

	width  int
	height int
	status string
	err    error
}

// New loads the track and the board of its current step. When the app has
// an event publisher the model listens for changes until ctx is done.
func New(ctx context.Context, a *app.App, trackID types.TrackID) (Model, error) {
	cfg := a.Config()
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		ctx:     ctx,
		app:     a,
		trackID: trackID,
		keys:    NewKeyMap(cfg.KeyMappings),
		help:    help.New(),
	}

	track, err := a.TrackService.GetTrack(ctx, trackID)
	if err != nil {
		return m, err
	}
	m.track = track
	if err := m.loadBoard(); err != nil {
		return m, err
	}

	if publisher := a.Events(); publisher != nil {
		ch, err := publisher.Listen(ctx)
		if err != nil {
			slog.Warn("browser runs without live updates", "error", err)
		} else {
			m.eventChan = ch
		}
	}
	return m, nil
}

// Track returns the track as last loaded
func (m Model) Track() *models.Track {
	return m.track
}

// Overview returns the board of the current step, nil if it has none
func (m Model) Overview() *boardservice.Overview {
	return m.overview
}

// Status returns the last status line message
func (m Model) Status() string {
	return m.status
}

// Err returns the last error shown in the status line
func (m Model) Err() error {
	return m.err
}

// currentBoardID returns the board bound to the current step
func (m Model) currentBoardID() (types.BoardID, bool) {
	if m.track == nil || m.track.CurrentStep < 0 || m.track.CurrentStep >= len(m.track.Steps) {
		return "", false
	}
	id := m.track.Steps[m.track.CurrentStep].BoardID
	if id == nil {
		return "", false
	}
	return *id, true
}

func (m *Model) loadBoard() error {
	id, ok := m.currentBoardID()
	if !ok {
		m.overview = nil
		return nil
	}
	ov, err := m.app.BoardService.Overview(m.ctx, id)
	if err != nil {
		return fmt.Errorf("loading board %s: %w", id, err)
	}
	m.overview = ov
	return nil
}

// reload fetches the track again, then its current board
func (m *Model) reload() error {
	track, err := m.app.TrackService.GetTrack(m.ctx, m.trackID)
	if err != nil {
		return err
	}
	m.track = track
	return m.loadBoard()
}

func (m Model) stepName() string {
	if m.track == nil || len(m.track.Steps) == 0 {
		return ""
	}
	return m.track.Steps[m.track.CurrentStep].Name
}
