package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/syllabus/internal/app"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/services/board"
	"github.com/thenoetrevino/syllabus/internal/services/subject"
	"github.com/thenoetrevino/syllabus/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		exit int
	}{
		{"board not found", fmt.Errorf("loading: %w", board.ErrBoardNotFound), "BOARD_NOT_FOUND", ExitNotFound},
		{"unknown column", &curriculum.MutationError{Op: "add subject", Kind: curriculum.ErrUnknownColumn}, "COLUMN_NOT_FOUND", ExitNotFound},
		{"unknown subject", &curriculum.MutationError{Op: "add subject", Kind: curriculum.ErrUnknownSubject}, "SUBJECT_NOT_FOUND", ExitNotFound},
		{"already placed", &curriculum.MutationError{Op: "add subject", Kind: curriculum.ErrAlreadyPlaced}, "ALREADY_PLACED", ExitValidation},
		{"out of range", &curriculum.MutationError{Op: "reorder", Kind: curriculum.ErrIndexOutOfRange}, "INDEX_OUT_OF_RANGE", ExitValidation},
		{"cycle", fmt.Errorf("require: %w", curriculum.ErrCircularPrerequisite), "CIRCULAR_PREREQUISITE", ExitValidation},
		{"blocked by warnings", &board.WarningsError{}, "PREREQUISITE_WARNINGS", ExitValidation},
		{"nothing to undo", fmt.Errorf("%w: board b1", board.ErrNothingToUndo), "NOTHING_TO_UNDO", ExitValidation},
		{"too many semesters", fmt.Errorf("%w: must be between 0 and 20", board.ErrInvalidSemesters), "VALIDATION_ERROR", ExitValidation},
		{"bad import", fmt.Errorf("%w: line 3", subject.ErrInvalidImport), "INVALID_IMPORT", ExitDataErr},
		{"bad position", fmt.Errorf("%w, got \"0\"", ErrInvalidPosition), "INVALID_POSITION", ExitUsage},
		{"anything else", errors.New("disk full"), "INTERNAL_ERROR", ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := Classify(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.exit, exit)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitNotFound, ExitCode(&ExitError{Code: ExitNotFound, Err: errors.New("gone")}))
	assert.Equal(t, ExitValidation, ExitCode(fmt.Errorf("wrapped: %w", curriculum.ErrAlreadyPlaced)))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
}

func TestFail(t *testing.T) {
	var err error
	output := testutil.CaptureOutput(t, func() {
		err = Fail(&OutputFormatter{JSON: true}, fmt.Errorf("place: %w", curriculum.ErrAlreadyPlaced))
	})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitValidation, exitErr.Code)
	assert.ErrorIs(t, err, curriculum.ErrAlreadyPlaced)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "ALREADY_PLACED", errData["code"])
	assert.Contains(t, errData["suggestion"], "place move")
}

func TestFail_HumanWritesToStderr(t *testing.T) {
	var stdout string
	stderr := testutil.CaptureStderr(t, func() {
		stdout = testutil.CaptureOutput(t, func() {
			_ = Fail(&OutputFormatter{}, board.ErrBoardNotFound)
		})
	})
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "board not found")
	assert.Contains(t, stderr, "syllabus board list")
}

func TestUsagef(t *testing.T) {
	err := Usagef(&OutputFormatter{Quiet: true}, "", "need %d arguments", 2)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Contains(t, err.Error(), "need 2 arguments")
}

func TestOutputFormatter_Success(t *testing.T) {
	t.Run("json envelope", func(t *testing.T) {
		output := testutil.CaptureOutput(t, func() {
			require.NoError(t, (&OutputFormatter{JSON: true}).Success(map[string]int{"placed": 3}))
		})
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, float64(3), result["data"].(map[string]any)["placed"])
	})

	t.Run("human uses Stringer", func(t *testing.T) {
		output := testutil.CaptureOutput(t, func() {
			require.NoError(t, (&OutputFormatter{}).Success(stringer("three subjects")))
		})
		assert.Equal(t, "three subjects\n", output)
	})
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestParsePosition(t *testing.T) {
	idx, err := ParsePosition("1")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = ParsePosition(" 4 ")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	for _, bad := range []string{"0", "-2", "two", ""} {
		_, err := ParsePosition(bad)
		assert.ErrorIs(t, err, ErrInvalidPosition, bad)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"CS101", "MATH101"}, SplitList(" CS101, ,MATH101,"))
	assert.Nil(t, SplitList(""))
}

func TestResolveBoard(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	a := app.New(db, nil)

	cs := testutil.CreateTestBoard(t, db, "Computer Science", 2)
	testutil.CreateTestBoard(t, db, "Twin", 1)
	testutil.CreateTestBoard(t, db, "twin", 1)

	id, err := ResolveBoard(ctx, a.BoardService, string(cs.ID))
	require.NoError(t, err)
	assert.Equal(t, cs.ID, id)

	id, err = ResolveBoard(ctx, a.BoardService, "computer science")
	require.NoError(t, err)
	assert.Equal(t, cs.ID, id)

	_, err = ResolveBoard(ctx, a.BoardService, "Biology")
	assert.ErrorIs(t, err, board.ErrBoardNotFound)

	_, err = ResolveBoard(ctx, a.BoardService, "TWIN")
	assert.ErrorIs(t, err, ErrAmbiguousBoard)

	_, err = ResolveBoard(ctx, a.BoardService, "  ")
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	a := app.New(db, nil)

	c, err := GetCLIFromContext(app.NewContext(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, c.App)

	// The injected app stays open
	require.NoError(t, c.Close())
	assert.NoError(t, db.PingContext(context.Background()))
}
