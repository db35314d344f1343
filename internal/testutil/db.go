// Package testutil provides shared helpers for tests: an in-memory database
// with the full schema, seed data and stdout capture.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/database"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// SetupTestDB creates an in-memory database with full schema. It is closed
// when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SeedSubjects stores subjects in the registry
func SeedSubjects(t *testing.T, db *sql.DB, subjects ...models.Subject) {
	t.Helper()
	repo := database.NewRepository(db)
	if err := repo.Subjects.UpsertAll(context.Background(), subjects); err != nil {
		t.Fatalf("Failed to seed subjects: %v", err)
	}
}

// SampleSubjects is a small registry with a prerequisite chain
// MATH101 <- MATH201 and CS101 <- CS201
func SampleSubjects() []models.Subject {
	return []models.Subject{
		{ID: "CS101", Name: "Programming I", Credits: 6, Hours: 96},
		{ID: "CS201", Name: "Data Structures", Credits: 6, Hours: 96, Prerequisites: types.SubjectIDs("CS101")},
		{ID: "MATH101", Name: "Calculus I", Credits: 4, Hours: 64},
		{ID: "MATH201", Name: "Calculus II", Credits: 4, Hours: 64, Prerequisites: types.SubjectIDs("MATH101")},
	}
}

// CreateTestBoard stores a board with n semesters and returns it
func CreateTestBoard(t *testing.T, db *sql.DB, name string, semesters int) *models.Board {
	t.Helper()
	b := curriculum.NewBoardWithSemesters(name, "", semesters)
	repo := database.NewRepository(db)
	if err := repo.Boards.Save(context.Background(), b); err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return b
}

// PlaceTestSubject writes a placement directly, bypassing the board service
func PlaceTestSubject(t *testing.T, db *sql.DB, b *models.Board, semester int, id types.SubjectID) *models.Board {
	t.Helper()
	next, err := curriculum.AddSubject(b, b.ColumnOrder[semester], id)
	if err != nil {
		t.Fatalf("Failed to place %s: %v", id, err)
	}
	repo := database.NewRepository(db)
	if err := repo.Boards.Save(context.Background(), next); err != nil {
		t.Fatalf("Failed to save board: %v", err)
	}
	return next
}

// CreateTestTrack stores a track with the given steps
func CreateTestTrack(t *testing.T, db *sql.DB, name string, steps ...string) *models.Track {
	t.Helper()
	repo := database.NewRepository(db)
	track, err := repo.Tracks.Create(context.Background(), name, steps)
	if err != nil {
		t.Fatalf("Failed to create test track: %v", err)
	}
	return track
}
