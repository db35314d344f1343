package place

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/database"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/testutil"
	clitest "github.com/thenoetrevino/syllabus/internal/testutil/cli"
	"github.com/thenoetrevino/syllabus/internal/types"
)

func semester(t *testing.T, repo *database.Repository, b *models.Board, i int) []types.SubjectID {
	t.Helper()
	stored, err := repo.Boards.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	return stored.Columns[b.ColumnOrder[i]].SubjectIDs
}

func TestAddPlacement(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	repo := database.NewRepository(db)
	testutil.SeedSubjects(t, db, testutil.SampleSubjects()...)
	b := testutil.CreateTestBoard(t, db, "CS", 2)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "CS101", "MATH101", "--column", "1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Placed 2 subject(s) in 'Semester 1' (2 subjects)")
	assert.Equal(t, types.SubjectIDs("CS101", "MATH101"), semester(t, repo, b, 0))

	t.Run("insert at position", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "MATH201", "--column", "semester 1", "--at", "2"})
		require.NoError(t, err)
		assert.Equal(t, types.SubjectIDs("CS101", "MATH201", "MATH101"), semester(t, repo, b, 0))
	})

	t.Run("already placed", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "CS101", "--column", "2", "--json"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "ALREADY_PLACED", errData["code"])
		assert.Empty(t, semester(t, repo, b, 1))
	})

	t.Run("unregistered subject", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "BIO999", "--column", "2"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("position past the end", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "CS201", "--column", "2", "--at", "3"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("warnings are reported", func(t *testing.T) {
		// Same semester as its prerequisite is accepted
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "CS201", "--column", "1"})
		require.NoError(t, err)
		assert.NotContains(t, output, "warning")

		// Scheduling the prerequisite later is allowed but flagged
		output, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "CS101", "--column", "2"})
		require.NoError(t, err)
		assert.Contains(t, output, "⚠ 1 prerequisite warning(s)")
		assert.Contains(t, output, "CS201 requires CS101: scheduled after dependent")
	})
}

func TestAddPlacement_BlockOnWarnings(t *testing.T) {
	cfg := config.Default()
	cfg.Validation.BlockOnWarnings = true
	db, app := clitest.SetupCLITestWithConfig(t, cfg)
	repo := database.NewRepository(db)
	testutil.SeedSubjects(t, db, testutil.SampleSubjects()...)
	b := testutil.CreateTestBoard(t, db, "CS", 2)

	_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "CS201", "--column", "1"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Empty(t, semester(t, repo, b, 0))
}

func TestRemovePlacement(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	repo := database.NewRepository(db)
	testutil.SeedSubjects(t, db, testutil.SampleSubjects()...)
	b := testutil.CreateTestBoard(t, db, "CS", 2)
	testutil.PlaceTestSubject(t, db, b, 1, "CS101")

	output, err := clitest.ExecuteCLICommand(t, app, RemoveCmd(), []string{"CS", "CS101"})
	require.NoError(t, err)
	assert.Contains(t, output, "CS101 removed from 'Semester 2'")
	assert.Empty(t, semester(t, repo, b, 1))

	_, err = clitest.ExecuteCLICommand(t, app, RemoveCmd(), []string{"CS", "CS101"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestMovePlacement(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	repo := database.NewRepository(db)
	testutil.SeedSubjects(t, db, testutil.SampleSubjects()...)
	b := testutil.CreateTestBoard(t, db, "CS", 2)
	b = testutil.PlaceTestSubject(t, db, b, 0, "CS101")
	b = testutil.PlaceTestSubject(t, db, b, 0, "MATH101")
	b = testutil.PlaceTestSubject(t, db, b, 0, "MATH201")

	t.Run("within a semester", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "CS101", "--at", "3"})
		require.NoError(t, err)
		assert.Equal(t, types.SubjectIDs("MATH101", "MATH201", "CS101"), semester(t, repo, b, 0))
	})

	t.Run("past the end of its own semester", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "CS101", "--at", "4"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("across semesters appends", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "MATH201", "--column", "2"})
		require.NoError(t, err)
		assert.Contains(t, output, "MATH201 moved to 'Semester 2' position 1")
		assert.Equal(t, types.SubjectIDs("MATH101", "CS101"), semester(t, repo, b, 0))
		assert.Equal(t, types.SubjectIDs("MATH201"), semester(t, repo, b, 1))
	})

	t.Run("no destination", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "CS101"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("unplaced subject", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "CS201", "--column", "1"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}
