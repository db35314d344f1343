package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

func TestSubjectRepo_UpsertAndGet(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	err := repo.Subjects.UpsertAll(ctx, []models.Subject{
		{ID: "MATH101", Name: "Calculus I", Credits: 4, Hours: 60},
		{ID: "CS201", Name: "Data Structures", Credits: 3, Prerequisites: types.SubjectIDs("MATH101", "CS101")},
	})
	require.NoError(t, err)

	all, err := repo.Subjects.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, types.SubjectID("CS201"), all[0].ID)
	assert.Equal(t, types.SubjectIDs("CS101", "MATH101"), all[0].Prerequisites)
	assert.Equal(t, 60, all[1].Hours)

	// Upsert replaces name and prerequisite list
	err = repo.Subjects.Upsert(ctx, models.Subject{ID: "CS201", Name: "Algorithms", Credits: 5})
	require.NoError(t, err)

	s, err := repo.Subjects.GetByID(ctx, "CS201")
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", s.Name)
	assert.Empty(t, s.Prerequisites)

	_, err = repo.Subjects.GetByID(ctx, "NOPE")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestSubjectRepo_SetPrerequisites(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "A", "B")

	require.NoError(t, repo.Subjects.SetPrerequisites(ctx, "B", types.SubjectIDs("A", "A")))
	s, err := repo.Subjects.GetByID(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, types.SubjectIDs("A"), s.Prerequisites)

	err = repo.Subjects.SetPrerequisites(ctx, "Z", types.SubjectIDs("A"))
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestBoardRepo_SaveAndLoadPreservesOrder(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101", "CS201")

	require.NoError(t, repo.Boards.Save(ctx, sampleBoard()))

	loaded, err := repo.Boards.GetByID(ctx, "board-1")
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", loaded.Name)
	assert.Equal(t, "core", loaded.Type)
	assert.Equal(t, []types.ColumnID{"col-2", "col-1"}, loaded.ColumnOrder)
	assert.Equal(t, types.SubjectIDs("MATH101", "CS101"), loaded.Columns["col-2"].SubjectIDs)
	assert.Equal(t, types.SubjectIDs("CS201"), loaded.Columns["col-1"].SubjectIDs)
	assert.False(t, loaded.CreatedAt.IsZero())
}

func TestBoardRepo_SaveReplacesSnapshot(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101", "CS201")
	require.NoError(t, repo.Boards.Save(ctx, sampleBoard()))

	b := sampleBoard()
	delete(b.Columns, "col-1")
	b.ColumnOrder = []types.ColumnID{"col-2"}
	b.Columns["col-2"].SubjectIDs = types.SubjectIDs("CS101")
	b.Name = "CS (revised)"
	require.NoError(t, repo.Boards.Save(ctx, b))

	loaded, err := repo.Boards.GetByID(ctx, "board-1")
	require.NoError(t, err)
	assert.Equal(t, "CS (revised)", loaded.Name)
	assert.Equal(t, []types.ColumnID{"col-2"}, loaded.ColumnOrder)
	assert.Equal(t, types.SubjectIDs("CS101"), loaded.Columns["col-2"].SubjectIDs)

	count, err := repo.Subjects.CountPlacements(ctx, "CS201")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBoardRepo_RejectsDuplicatePlacement(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101", "CS201")

	b := sampleBoard()
	b.Columns["col-1"].SubjectIDs = append(b.Columns["col-1"].SubjectIDs, "MATH101")
	require.Error(t, repo.Boards.Save(ctx, b))

	// The failed save rolled back entirely
	_, err := repo.Boards.GetByID(ctx, "board-1")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestBoardRepo_RejectsUnknownSubject(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101")

	assert.Error(t, repo.Boards.Save(ctx, sampleBoard()), "CS201 is not registered")
}

func TestBoardRepo_ListAndDelete(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101", "CS201")
	require.NoError(t, repo.Boards.Save(ctx, sampleBoard()))
	require.NoError(t, repo.Boards.Save(ctx, &models.Board{ID: "board-0", Name: "Arts", Columns: map[types.ColumnID]*models.Column{}}))

	summaries, err := repo.Boards.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Arts", summaries[0].Name)
	assert.Equal(t, 2, summaries[1].ColumnCount)
	assert.Equal(t, 3, summaries[1].Placed)

	require.NoError(t, repo.Boards.Delete(ctx, "board-1"))
	count, err := repo.Subjects.CountPlacements(ctx, "MATH101")
	require.NoError(t, err)
	assert.Zero(t, count, "placements cascade with the board")

	err = repo.Boards.Delete(ctx, "board-1")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestBoardRepo_HistoryRoundTrip(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101", "CS201")

	prev := sampleBoard()
	require.NoError(t, repo.Boards.Save(ctx, prev))

	next := sampleBoard()
	next.Columns["col-1"].SubjectIDs = types.SubjectIDs()
	require.NoError(t, repo.Boards.SaveWithHistory(ctx, next, prev, 10))

	history, err := repo.Boards.History(ctx, "board-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, prev.ColumnOrder, history[0].ColumnOrder)
	assert.Equal(t, types.SubjectIDs("CS201"), history[0].Columns["col-1"].SubjectIDs)

	require.NoError(t, repo.Boards.Restore(ctx, history[0]))
	loaded, err := repo.Boards.GetByID(ctx, "board-1")
	require.NoError(t, err)
	assert.Equal(t, types.SubjectIDs("CS201"), loaded.Columns["col-1"].SubjectIDs)

	history, err = repo.Boards.History(ctx, "board-1")
	require.NoError(t, err)
	assert.Empty(t, history, "restore pops the snapshot it applied")
}

func TestBoardRepo_HistoryIsTrimmed(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101", "CS201")

	b := sampleBoard()
	require.NoError(t, repo.Boards.Save(ctx, b))
	for _, name := range []string{"v1", "v2", "v3", "v4"} {
		next := sampleBoard()
		next.Name = name
		require.NoError(t, repo.Boards.SaveWithHistory(ctx, next, b, 2))
		b = next
	}

	history, err := repo.Boards.History(ctx, "board-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "v2", history[0].Name)
	assert.Equal(t, "v3", history[1].Name)
}

func TestBoardRepo_HistoryCascadesWithBoard(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101", "CS201")

	b := sampleBoard()
	require.NoError(t, repo.Boards.Save(ctx, b))
	require.NoError(t, repo.Boards.SaveWithHistory(ctx, sampleBoard(), b, 5))
	require.NoError(t, repo.Boards.Delete(ctx, "board-1"))

	history, err := repo.Boards.History(ctx, "board-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTrackRepo_Lifecycle(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedSubjects(t, repo, "MATH101", "CS101", "CS201")

	track, err := repo.Tracks.Create(ctx, "BSc Computer Science", []string{"Core", "Electives", "Capstone"})
	require.NoError(t, err)
	assert.Len(t, track.Steps, 3)

	require.NoError(t, repo.Boards.Save(ctx, sampleBoard()))
	boardID := types.BoardID("board-1")
	require.NoError(t, repo.Tracks.AttachBoard(ctx, track.ID, 1, &boardID))
	require.NoError(t, repo.Tracks.SetCurrentStep(ctx, track.ID, 1))

	loaded, err := repo.Tracks.GetByName(ctx, "BSc Computer Science")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.CurrentStep)
	assert.Nil(t, loaded.Steps[0].BoardID)
	require.NotNil(t, loaded.Steps[1].BoardID)
	assert.Equal(t, boardID, *loaded.Steps[1].BoardID)

	// Deleting the board unbinds the step
	require.NoError(t, repo.Boards.Delete(ctx, boardID))
	loaded, err = repo.Tracks.GetByID(ctx, track.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.Steps[1].BoardID)

	err = repo.Tracks.AttachBoard(ctx, track.ID, 7, nil)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	tracks, err := repo.Tracks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)

	require.NoError(t, repo.Tracks.Delete(ctx, track.ID))
	_, err = repo.Tracks.GetByID(ctx, track.ID)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestTrackRepo_UniqueName(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.Tracks.Create(ctx, "Arts", []string{"Core"})
	require.NoError(t, err)
	_, err = repo.Tracks.Create(ctx, "Arts", []string{"Core"})
	assert.Error(t, err)
}
