package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// Init starts listening for events
func (m Model) Init() tea.Cmd {
	return m.subscribe()
}

// Update handles key presses, resizes and refresh notifications
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case RefreshMsg:
		if m.concerns(msg.Event) {
			m.setErr(m.reload())
		}
		return m, m.subscribe()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PrevStep):
		m.step(m.app.TrackService.Prev, "Already at the first step")
	case key.Matches(msg, m.keys.NextStep):
		m.step(m.app.TrackService.Next, "Already at the last step")
	case key.Matches(msg, m.keys.NewBoard):
		m.ensureBoard()
	case key.Matches(msg, m.keys.Undo):
		m.undo()
	case key.Matches(msg, m.keys.Refresh):
		if err := m.reload(); err != nil {
			m.setErr(err)
		} else {
			m.status = "Refreshed"
		}
	}
	return m, nil
}

type move func(ctx context.Context, id types.TrackID) (*models.Track, bool, error)

func (m *Model) step(mv move, unchanged string) {
	track, changed, err := mv(m.ctx, m.trackID)
	if err != nil {
		m.setErr(err)
		return
	}
	m.track = track
	if !changed {
		m.status = unchanged
		return
	}
	m.setErr(m.loadBoard())
}

func (m *Model) ensureBoard() {
	track, created, err := m.app.TrackService.EnsureBoard(m.ctx, m.trackID)
	if err != nil {
		m.setErr(err)
		return
	}
	m.track = track
	if created {
		m.status = fmt.Sprintf("Created board for %s", m.stepName())
	} else {
		m.status = fmt.Sprintf("%s already has a board", m.stepName())
	}
	m.setErr(m.loadBoard())
}

func (m *Model) undo() {
	id, ok := m.currentBoardID()
	if !ok {
		m.status = fmt.Sprintf("%s has no board", m.stepName())
		return
	}
	if _, err := m.app.BoardService.Undo(m.ctx, id); err != nil {
		m.setErr(err)
		return
	}
	m.status = "Undid last change"
	m.setErr(m.loadBoard())
}

func (m *Model) setErr(err error) {
	m.err = err
	if err != nil {
		m.status = ""
	}
}
