package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
)

// UndoCmd returns the board undo subcommand
func UndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <board>",
		Short: "Revert the last change to a board",
		Long: fmt.Sprintf(`Restore the board as it was before its last column or placement change.

Up to %d changes per board can be undone, one at a time.`, curriculum.MaxUndo),
		Example: `  syllabus board undo "Computer Science"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runUndo,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUndo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.BoardService
	boardID, err := cli.ResolveBoard(ctx, svc, args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}

	res, err := svc.Undo(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return cli.ReportResult(formatter, res, fmt.Sprintf("✓ Last change to '%s' undone", res.Board.Name))
}
