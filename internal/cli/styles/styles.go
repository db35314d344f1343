// Package styles holds the lipgloss styles of human CLI output.
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field lines like "Requires: CS101"

	// Status styles
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subject))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Warning))
}

// RenderSubject renders a subject as a card with its credits and prerequisites
func RenderSubject(s *models.Subject) string {
	lines := []string{
		TitleStyle.Render(fmt.Sprintf("%s  %s", s.ID, s.Name)),
		SubtitleStyle.Render(fmt.Sprintf("Credits: %d  Hours: %d", s.Credits, s.Hours)),
	}
	if len(s.Prerequisites) > 0 {
		prereqs := make([]string, 0, len(s.Prerequisites))
		for _, p := range s.Prerequisites {
			prereqs = append(prereqs, string(p))
		}
		lines = append(lines, LabelStyle.Render("Requires: "+strings.Join(prereqs, ", ")))
	}
	return RenderCard(strings.Join(lines, "\n"))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
