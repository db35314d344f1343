package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/syllabus/internal/models"
)

func TestValidate_ScheduledAfterDependent(t *testing.T) {
	g := NewPrerequisiteGraph()
	require.NoError(t, g.Require("CS201", "MATH101"))

	// CS201 in column 0, MATH101 in column 2
	b := boardWith(t, []string{"CS201"}, []string{}, []string{"MATH101"})

	warnings := Validate(b, g)
	require.Len(t, warnings, 1)
	assert.Equal(t, models.Warning{
		SubjectID:      "CS201",
		PrerequisiteID: "MATH101",
		Reason:         models.ReasonScheduledAfter,
	}, warnings[0])
}

func TestValidate(t *testing.T) {
	g := NewPrerequisiteGraph()
	require.NoError(t, g.Require("CS201", "CS101"))
	require.NoError(t, g.Require("CS301", "CS201"))
	require.NoError(t, g.Require("CS301", "MATH201"))

	tests := []struct {
		name     string
		columns  [][]string
		expected []models.Warning
	}{
		{
			name:    "well ordered",
			columns: [][]string{{"CS101"}, {"CS201", "MATH201"}, {"CS301"}},
		},
		{
			name:    "same column is accepted",
			columns: [][]string{{"CS101", "CS201"}},
		},
		{
			name:    "missing prerequisite",
			columns: [][]string{{"CS201"}},
			expected: []models.Warning{
				{SubjectID: "CS201", PrerequisiteID: "CS101", Reason: models.ReasonMissing},
			},
		},
		{
			name:    "mixed warnings in board order",
			columns: [][]string{{"CS301"}, {"CS201"}},
			expected: []models.Warning{
				{SubjectID: "CS301", PrerequisiteID: "CS201", Reason: models.ReasonScheduledAfter},
				{SubjectID: "CS301", PrerequisiteID: "MATH201", Reason: models.ReasonMissing},
				{SubjectID: "CS201", PrerequisiteID: "CS101", Reason: models.ReasonMissing},
			},
		},
		{
			name:    "empty board",
			columns: [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, tt.columns...)
			assert.Equal(t, tt.expected, Validate(b, g))
		})
	}
}

func TestValidate_UsesColumnOrderNotMapOrder(t *testing.T) {
	g := NewPrerequisiteGraph()
	require.NoError(t, g.Require("CS201", "CS101"))

	b := boardWith(t, []string{"CS101"}, []string{"CS201"})
	assert.Empty(t, Validate(b, g))

	swapped, err := MoveColumn(b, 1, 0)
	require.NoError(t, err)
	warnings := Validate(swapped, g)
	require.Len(t, warnings, 1)
	assert.Equal(t, models.ReasonScheduledAfter, warnings[0].Reason)
}
