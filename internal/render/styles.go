// Package render turns curriculum boards into terminal output: a lipgloss
// board view shared by the CLI and the browser, and a Markdown report
// rendered with glamour. Call InitStyles to apply a configured theme.
package render

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/syllabus/internal/config"
)

var (
	// TitleStyle renders board names and column headers
	TitleStyle lipgloss.Style

	// SubtitleStyle renders secondary text such as the board type
	SubtitleStyle lipgloss.Style

	// ColumnStyle frames one semester
	ColumnStyle lipgloss.Style

	// SubjectStyle renders a placed subject
	SubjectStyle lipgloss.Style

	// EmptyStyle renders the placeholder of an empty column
	EmptyStyle lipgloss.Style

	// WarningStyle renders warning markers and lines
	WarningStyle lipgloss.Style

	// ErrorStyle renders errors in the browser status line
	ErrorStyle lipgloss.Style

	// ActiveStepStyle and StepStyle render the wizard step bar
	ActiveStepStyle lipgloss.Style
	StepStyle       lipgloss.Style
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(0, 1)

	SubjectStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subject))

	EmptyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Italic(true)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Warning))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	ActiveStepStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent)).
		Underline(true).
		Padding(0, 1)

	StepStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Padding(0, 1)
}
