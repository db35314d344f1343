package curriculum

import (
	"fmt"
	"testing"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// stubIDs makes generated column IDs S1, S2, ... and board IDs B1, B2, ...
func stubIDs(t *testing.T) {
	t.Helper()
	origBoard, origColumn := newBoardID, newColumnID
	boards, columns := 0, 0
	newBoardID = func() types.BoardID {
		boards++
		return types.BoardID(fmt.Sprintf("B%d", boards))
	}
	newColumnID = func() types.ColumnID {
		columns++
		return types.ColumnID(fmt.Sprintf("S%d", columns))
	}
	t.Cleanup(func() {
		newBoardID, newColumnID = origBoard, origColumn
	})
}

// boardWith builds a board whose columns S1..Sn hold the given subjects
func boardWith(t *testing.T, columns ...[]string) *models.Board {
	t.Helper()
	stubIDs(t)
	b := NewBoardWithSemesters("Computer Science", "core", len(columns))
	for i, subjects := range columns {
		colID := b.ColumnOrder[i]
		for _, s := range subjects {
			var err error
			b, err = AddSubject(b, colID, types.SubjectID(s))
			if err != nil {
				t.Fatalf("Failed to place %s: %v", s, err)
			}
		}
	}
	return b
}

// subjectsIn returns the subject IDs of a column as plain strings
func subjectsIn(b *models.Board, id types.ColumnID) []string {
	col := b.Columns[id]
	out := make([]string, len(col.SubjectIDs))
	for i, s := range col.SubjectIDs {
		out[i] = string(s)
	}
	return out
}
