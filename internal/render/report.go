package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Markdown builds the curriculum report of a board: one table per semester
// with credit and hour totals, the subjects still unplaced, and the
// prerequisite warnings.
func Markdown(b *models.Board, reg *curriculum.Registry, warnings []models.Warning) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", b.Name)
	if b.Type != "" {
		fmt.Fprintf(&sb, "*Type:* %s\n\n", b.Type)
	}
	placed := curriculum.Placed(b)
	fmt.Fprintf(&sb, "**%d semesters · %d subjects · %d credits**\n\n",
		len(b.ColumnOrder), len(placed), reg.Credits(placed))

	for _, col := range b.OrderedColumns() {
		fmt.Fprintf(&sb, "## %s\n\n", col.Title)
		if len(col.SubjectIDs) == 0 {
			sb.WriteString("_No subjects._\n\n")
			continue
		}
		sb.WriteString("| Subject | Name | Credits | Hours |\n")
		sb.WriteString("|---|---|---:|---:|\n")
		hours := 0
		for _, id := range col.SubjectIDs {
			s, ok := reg.Get(id)
			if !ok {
				fmt.Fprintf(&sb, "| %s | _unknown_ | | |\n", id)
				continue
			}
			hours += s.Hours
			fmt.Fprintf(&sb, "| %s | %s | %d | %d |\n", s.ID, escapeCell(s.Name), s.Credits, s.Hours)
		}
		fmt.Fprintf(&sb, "| **Total** | | **%d** | **%d** |\n\n", reg.Credits(col.SubjectIDs), hours)
	}

	if unplaced := curriculum.Unplaced(b, reg); len(unplaced) > 0 {
		sb.WriteString("## Unplaced subjects\n\n")
		for _, s := range unplaced {
			fmt.Fprintf(&sb, "- %s %s (%d credits)\n", s.ID, s.Name, s.Credits)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Prerequisite warnings\n\n")
	if len(warnings) == 0 {
		sb.WriteString("None.\n")
	}
	for _, w := range warnings {
		fmt.Fprintf(&sb, "- %s\n", WarningLine(w))
	}
	return sb.String()
}

// RenderMarkdown renders Markdown for the terminal. On renderer failure the
// raw Markdown is returned together with the error.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return md, err
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md, err
	}
	return out, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
