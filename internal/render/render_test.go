package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

func sampleBoard() (*models.Board, *curriculum.Registry, []models.Warning) {
	b := &models.Board{
		ID:          "board-1",
		Name:        "Computer Science",
		Type:        "core",
		ColumnOrder: []types.ColumnID{"c1", "c2", "c3"},
		Columns: map[types.ColumnID]*models.Column{
			"c1": {ID: "c1", Title: "Semester 1", SubjectIDs: types.SubjectIDs("CS201")},
			"c2": {ID: "c2", Title: "Semester 2", SubjectIDs: types.SubjectIDs("CS101", "MATH101")},
			"c3": {ID: "c3", Title: "Semester 3", SubjectIDs: []types.SubjectID{}},
		},
	}
	reg := curriculum.NewRegistry([]models.Subject{
		{ID: "MATH101", Name: "Calculus I", Credits: 4, Hours: 64},
		{ID: "CS101", Name: "Programming I", Credits: 6, Hours: 96},
		{ID: "CS201", Name: "Data Structures", Credits: 6, Hours: 96, Prerequisites: types.SubjectIDs("CS101")},
		{ID: "ART100", Name: "Drawing", Credits: 2, Hours: 32},
	})
	g, err := reg.Graph()
	if err != nil {
		panic(err)
	}
	return b, reg, curriculum.Validate(b, g)
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, DefaultColumnWidth, ColumnWidth(0, 3))
	assert.Equal(t, DefaultColumnWidth, ColumnWidth(120, 0))
	assert.Equal(t, MaxColumnWidth, ColumnWidth(400, 2))
	assert.Equal(t, MinColumnWidth, ColumnWidth(40, 8))
	assert.Equal(t, 29, ColumnWidth(120, 4))
}

func TestBoard(t *testing.T) {
	b, reg, warnings := sampleBoard()
	require.Len(t, warnings, 1)

	out := ansi.Strip(Board(b, reg, warnings, 120))

	assert.Contains(t, out, "Computer Science")
	assert.Contains(t, out, "3 subjects · 16 credits")
	assert.Contains(t, out, "Semester 1 · 6 cr")
	assert.Contains(t, out, "Semester 2 · 10 cr")
	assert.Contains(t, out, "! CS201 Data Structures")
	assert.Contains(t, out, "CS101 Programming I")
	assert.Contains(t, out, "No subjects")
	assert.Contains(t, out, "CS201 requires CS101: scheduled after dependent")

	// Semesters are laid out side by side
	firstRow := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Semester 1") {
			firstRow = line
			break
		}
	}
	assert.Contains(t, firstRow, "Semester 2")
	assert.Contains(t, firstRow, "Semester 3")
}

func TestBoard_WithoutRegistry(t *testing.T) {
	b, _, _ := sampleBoard()
	out := ansi.Strip(Board(b, nil, nil, 0))

	assert.Contains(t, out, "3 subjects")
	assert.NotContains(t, out, "credits")
	assert.Contains(t, out, "CS101")
	assert.NotContains(t, out, "prerequisite warning")
}

func TestBoard_NoColumns(t *testing.T) {
	b := curriculum.NewBoard("Empty", "")
	out := ansi.Strip(Board(b, nil, nil, 80))
	assert.Contains(t, out, "No semesters")
}

func TestMarkdown(t *testing.T) {
	b, reg, warnings := sampleBoard()
	md := Markdown(b, reg, warnings)

	assert.Contains(t, md, "# Computer Science")
	assert.Contains(t, md, "**3 semesters · 3 subjects · 16 credits**")
	assert.Contains(t, md, "## Semester 2")
	assert.Contains(t, md, "| CS101 | Programming I | 6 | 96 |")
	assert.Contains(t, md, "| **Total** | | **10** | **160** |")
	assert.Contains(t, md, "_No subjects._")
	assert.Contains(t, md, "- ART100 Drawing (2 credits)")
	assert.Contains(t, md, "- CS201 requires CS101: scheduled after dependent")
}

func TestRenderMarkdown(t *testing.T) {
	b, reg, warnings := sampleBoard()
	out, err := RenderMarkdown(Markdown(b, reg, warnings), 100)
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Computer Science")
	assert.Contains(t, plain, "Programming I")
}
