package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/syllabus/internal/render"
)

// View renders the step bar, the board of the current step and the status line
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.content()
	return view
}

func (m Model) content() string {
	if m.track == nil {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, render.TitleStyle.Render(m.track.Name))
	sections = append(sections, m.stepBar())

	switch {
	case len(m.track.Steps) == 0:
		sections = append(sections, render.EmptyStyle.Render("This track has no steps"))
	case m.overview == nil:
		hint := fmt.Sprintf("No board for %s yet. Press %s to create one.",
			m.stepName(), m.keys.NewBoard.Help().Key)
		sections = append(sections, render.EmptyStyle.Render(hint))
	default:
		sections = append(sections, render.Board(
			m.overview.Board, m.overview.Registry, m.overview.Warnings, m.width))
	}

	if line := m.statusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// stepBar renders every step name, highlighting the current one
func (m Model) stepBar() string {
	parts := make([]string, len(m.track.Steps))
	for i, s := range m.track.Steps {
		label := fmt.Sprintf("%d. %s", i+1, s.Name)
		if i == m.track.CurrentStep {
			parts[i] = render.ActiveStepStyle.Render(label)
		} else {
			parts[i] = render.StepStyle.Render(label)
		}
	}
	return strings.Join(parts, " › ")
}

func (m Model) statusLine() string {
	if m.err != nil {
		return render.ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.status != "" {
		return render.SubtitleStyle.Render(m.status)
	}
	return ""
}
