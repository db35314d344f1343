package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedSubjects inserts subjects with no prerequisites
func seedSubjects(t *testing.T, repo *Repository, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if err := repo.Subjects.Upsert(context.Background(), models.Subject{ID: types.SubjectID(id), Name: id, Credits: 3}); err != nil {
			t.Fatalf("Failed to seed subject %s: %v", id, err)
		}
	}
}

// sampleBoard returns a two-semester board with fixed IDs
func sampleBoard() *models.Board {
	return &models.Board{
		ID:          "board-1",
		Name:        "Computer Science",
		Type:        "core",
		ColumnOrder: []types.ColumnID{"col-2", "col-1"},
		Columns: map[types.ColumnID]*models.Column{
			"col-1": {ID: "col-1", Title: "Semester 2", SubjectIDs: types.SubjectIDs("CS201")},
			"col-2": {ID: "col-2", Title: "Semester 1", SubjectIDs: types.SubjectIDs("MATH101", "CS101")},
		},
	}
}
