package track

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/testutil"
	clitest "github.com/thenoetrevino/syllabus/internal/testutil/cli"
)

func TestCreateTrack(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
		"--name", "BSc CS", "--steps", "Core, Electives ,Thesis",
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Track 'BSc CS' created successfully")
	assert.Contains(t, output, "step 1/3")
	assert.Contains(t, output, "▸ 1. Core")

	_, err = clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "BSc CS", "--steps", "Core"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	output, err = clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Empty", "--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "Empty", data["name"])

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Found 2 track(s)")
}

func TestNavigateTrack(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	track := testutil.CreateTestTrack(t, db, "BSc CS", "Core", "Electives", "Thesis")

	output, err := clitest.ExecuteCLICommand(t, app, PrevCmd(), []string{"BSc CS"})
	require.NoError(t, err)
	assert.Contains(t, output, "Already at the first step")

	output, err = clitest.ExecuteCLICommand(t, app, NextCmd(), []string{"BSc CS", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "2\n", output)

	output, err = clitest.ExecuteCLICommand(t, app, GoToCmd(), []string{"BSc CS", "3", "--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, true, data["changed"])
	assert.Equal(t, float64(2), data["track"].(map[string]any)["current_step"])

	output, err = clitest.ExecuteCLICommand(t, app, NextCmd(), []string{"BSc CS"})
	require.NoError(t, err)
	assert.Contains(t, output, "Already at the last step")

	output, err = clitest.ExecuteCLICommand(t, app, GoToCmd(), []string{"BSc CS", "9"})
	require.NoError(t, err)
	assert.Contains(t, output, "No step at position 9")
	assert.Contains(t, output, "▸ 3. Thesis")

	_, err = clitest.ExecuteCLICommand(t, app, GoToCmd(), []string{"BSc CS", "zero"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	// The position survives across commands
	var current int
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT current_step FROM tracks WHERE id = ?", track.ID.ToInt()).Scan(&current))
	assert.Equal(t, 2, current)

	_, err = clitest.ExecuteCLICommand(t, app, NextCmd(), []string{"Nope"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestTrackBoard(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	testutil.CreateTestTrack(t, db, "BSc CS", "Core", "Electives")

	output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"BSc CS", "--quiet"})
	require.NoError(t, err)
	boardID := strings.TrimSpace(output)
	require.NotEmpty(t, boardID)

	var name string
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT name FROM boards WHERE id = ?", boardID).Scan(&name))
	assert.Equal(t, "BSc CS: Core", name)

	// A second call reuses the board
	output, err = clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"BSc CS"})
	require.NoError(t, err)
	assert.Contains(t, output, "Step 'Core' uses board "+boardID)

	output, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"BSc CS"})
	require.NoError(t, err)
	assert.Contains(t, output, "board "+boardID)
	assert.Contains(t, output, "(no board)")

	t.Run("track without steps", func(t *testing.T) {
		testutil.CreateTestTrack(t, db, "Empty")
		_, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"Empty"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestDeleteTrack(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	track := testutil.CreateTestTrack(t, db, "Minor", "Core")

	output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"Minor"})
	require.NoError(t, err)
	assert.Contains(t, output, "Track 'Minor' deleted")

	_, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{strconv.Itoa(track.ID.ToInt())})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
