package column

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/database"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/testutil"
	clitest "github.com/thenoetrevino/syllabus/internal/testutil/cli"
	"github.com/thenoetrevino/syllabus/internal/types"
)

func titles(t *testing.T, repo *database.Repository, id types.BoardID) []string {
	t.Helper()
	b, err := repo.Boards.GetByID(context.Background(), id)
	require.NoError(t, err)
	var out []string
	for _, col := range b.OrderedColumns() {
		out = append(out, col.Title)
	}
	return out
}

func TestAddColumn(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	repo := database.NewRepository(db)
	b := testutil.CreateTestBoard(t, db, "CS", 2)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS"})
	require.NoError(t, err)
	assert.Contains(t, output, "Semester 'Semester 3' added at position 3")

	output, err = clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "--title", "Summer", "--quiet"})
	require.NoError(t, err)
	columnID := types.ColumnID(strings.TrimSpace(output))

	stored, err := repo.Boards.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.Contains(t, stored.Columns, columnID)
	assert.Equal(t, []string{"Semester 1", "Semester 2", "Semester 3", "Summer"}, titles(t, repo, b.ID))

	_, err = clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"CS", "--title", " "})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}

func TestRemoveColumn(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	repo := database.NewRepository(db)
	testutil.SeedSubjects(t, db, testutil.SampleSubjects()...)
	b := testutil.CreateTestBoard(t, db, "CS", 3)
	testutil.PlaceTestSubject(t, db, b, 1, "CS101")

	output, err := clitest.ExecuteCLICommand(t, app, RemoveCmd(), []string{"CS", "semester 2"})
	require.NoError(t, err)
	assert.Contains(t, output, "Semester 'Semester 2' removed (1 subjects unplaced)")
	assert.Equal(t, []string{"Semester 1", "Semester 3"}, titles(t, repo, b.ID))

	var placements int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM placements").Scan(&placements))
	assert.Zero(t, placements)

	t.Run("unknown semester", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, RemoveCmd(), []string{"CS", "Winter", "--json"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("position out of range", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, RemoveCmd(), []string{"CS", "7"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestRenameColumn(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	repo := database.NewRepository(db)
	b := testutil.CreateTestBoard(t, db, "CS", 2)

	output, err := clitest.ExecuteCLICommand(t, app, RenameCmd(), []string{"CS", "2", "--title", "Exchange", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])

	assert.Equal(t, []string{"Semester 1", "Exchange"}, titles(t, repo, b.ID))
}

func TestMoveColumn(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	repo := database.NewRepository(db)
	b := testutil.CreateTestBoard(t, db, "CS", 3)

	output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "3", "--to", "1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Semester 'Semester 3' moved to position 1")
	assert.Equal(t, []string{"Semester 3", "Semester 1", "Semester 2"}, titles(t, repo, b.ID))

	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "1", "--to", "4"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "1", "--to", "first"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestMoveColumn_ReportsWarnings(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	testutil.SeedSubjects(t, db, testutil.SampleSubjects()...)
	b := testutil.CreateTestBoard(t, db, "CS", 2)
	b = testutil.PlaceTestSubject(t, db, b, 0, "CS101")
	testutil.PlaceTestSubject(t, db, b, 1, "CS201")

	output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"CS", "2", "--to", "1", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	warnings := data["warnings"].([]any)
	require.Len(t, warnings, 1)
	assert.Equal(t, models.ReasonScheduledAfter, warnings[0].(map[string]any)["reason"])
}
