package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

func TestRenderSubject(t *testing.T) {
	s := &models.Subject{
		ID:            "CS201",
		Name:          "Data Structures",
		Credits:       6,
		Hours:         96,
		Prerequisites: []types.SubjectID{"CS101", "MATH101"},
	}

	out := ansi.Strip(RenderSubject(s))
	assert.Contains(t, out, "CS201  Data Structures")
	assert.Contains(t, out, "Credits: 6  Hours: 96")
	assert.Contains(t, out, "Requires: CS101, MATH101")
	assert.Contains(t, out, "╭", "rendered inside a rounded card")
}

func TestRenderSubject_NoPrerequisites(t *testing.T) {
	out := ansi.Strip(RenderSubject(&models.Subject{ID: "CS101", Name: "Programming"}))
	assert.NotContains(t, out, "Requires")
}

func TestInit_Monochrome(t *testing.T) {
	t.Cleanup(func() { Init(config.DefaultColorScheme()) })
	Init(config.MonochromeColorScheme())

	out := ansi.Strip(RenderSubject(&models.Subject{ID: "CS101", Name: "Programming"}))
	assert.Contains(t, out, "CS101  Programming")
}
