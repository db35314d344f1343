package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

const (
	DefaultColumnWidth = 28
	MinColumnWidth     = 18
	MaxColumnWidth     = 36

	columnFrameWidth = 4 // border (2) + horizontal padding (2)
	warningMarker    = "!"
)

// ColumnWidth picks a column width that fits n columns in the terminal width.
// A non-positive width yields DefaultColumnWidth.
func ColumnWidth(width, n int) int {
	if width <= 0 || n == 0 {
		return DefaultColumnWidth
	}
	return max(MinColumnWidth, min(MaxColumnWidth, width/n-1))
}

// Board renders a board header followed by its semesters side by side.
// Subjects that have a prerequisite warning are marked with "!". reg may be
// nil, in which case only subject IDs are shown.
func Board(b *models.Board, reg *curriculum.Registry, warnings []models.Warning, width int) string {
	flagged := make(map[types.SubjectID]bool, len(warnings))
	for _, w := range warnings {
		flagged[w.SubjectID] = true
	}

	columns := b.OrderedColumns()
	colWidth := ColumnWidth(width, len(columns))

	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		rendered = append(rendered, renderColumn(col, reg, flagged, colWidth))
	}

	parts := []string{header(b, reg)}
	if len(rendered) == 0 {
		parts = append(parts, EmptyStyle.Render("No semesters"))
	} else {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	if len(warnings) > 0 {
		parts = append(parts, Warnings(warnings))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func header(b *models.Board, reg *curriculum.Registry) string {
	title := TitleStyle.Render(b.Name)
	if b.Type != "" {
		title += " " + SubtitleStyle.Render("("+b.Type+")")
	}
	placed := curriculum.Placed(b)
	summary := fmt.Sprintf("%d subjects", len(placed))
	if reg != nil {
		summary += fmt.Sprintf(" · %d credits", reg.Credits(placed))
	}
	return title + "\n" + SubtitleStyle.Render(summary)
}

func renderColumn(col *models.Column, reg *curriculum.Registry, flagged map[types.SubjectID]bool, width int) string {
	inner := width - columnFrameWidth

	heading := col.Title
	if reg != nil {
		heading = fmt.Sprintf("%s · %d cr", col.Title, reg.Credits(col.SubjectIDs))
	}
	lines := []string{TitleStyle.Render(ansi.Truncate(heading, inner, "…"))}

	if len(col.SubjectIDs) == 0 {
		lines = append(lines, EmptyStyle.Render("No subjects"))
	}
	for _, id := range col.SubjectIDs {
		marker := " "
		if flagged[id] {
			marker = WarningStyle.Render(warningMarker)
		}
		lines = append(lines, marker+" "+SubjectStyle.Render(ansi.Truncate(subjectLabel(id, reg), inner-2, "…")))
	}

	return ColumnStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func subjectLabel(id types.SubjectID, reg *curriculum.Registry) string {
	if reg == nil {
		return string(id)
	}
	if s, ok := reg.Get(id); ok && s.Name != "" {
		return string(id) + " " + s.Name
	}
	return string(id)
}

// Warnings renders one line per prerequisite warning
func Warnings(warnings []models.Warning) string {
	lines := make([]string, 0, len(warnings)+1)
	lines = append(lines, WarningStyle.Render(fmt.Sprintf("%d prerequisite warning(s)", len(warnings))))
	for _, w := range warnings {
		lines = append(lines, "  "+WarningStyle.Render(warningMarker)+" "+WarningLine(w))
	}
	return strings.Join(lines, "\n")
}

// WarningLine describes a warning in plain text
func WarningLine(w models.Warning) string {
	return fmt.Sprintf("%s requires %s: %s", w.SubjectID, w.PrerequisiteID, w.Reason)
}
