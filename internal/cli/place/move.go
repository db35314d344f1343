package place

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
	boardservice "github.com/thenoetrevino/syllabus/internal/services/board"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// MoveCmd returns the place move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <board> <subject>",
		Short: "Move a placed subject",
		Long: `Move a placed subject to another semester or to another position in its
own semester. Without --column it stays in its semester; without --at it
goes to the end.`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cmd.Flags().String("column", "", "Destination semester ID, 1-based position or title")
	cmd.Flags().String("at", "", "1-based destination position inside the semester")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	columnRef, _ := cmd.Flags().GetString("column")
	formatter := cli.FormatterFromFlags(cmd)
	subjectID := types.SubjectID(args[1])

	if !cmd.Flags().Changed("column") && !cmd.Flags().Changed("at") {
		return cli.Usagef(formatter, "Pass --column, --at or both", "nothing to move: no destination given")
	}

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
	b, err := svc.GetBoard(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	from, placed := curriculum.Locate(b, subjectID)
	if !placed {
		return cli.Fail(formatter, &curriculum.MutationError{
			Op: "reorder", Kind: curriculum.ErrUnknownSubject, SubjectID: subjectID,
		})
	}

	dest := from.ColumnID
	if columnRef != "" {
		dest, err = boardservice.ResolveColumn(b, columnRef)
		if err != nil {
			return cli.Fail(formatter, err)
		}
	}

	// Default destination is the end of the semester once the subject is out
	destIndex := len(b.Columns[dest].SubjectIDs)
	if dest == from.ColumnID {
		destIndex--
	}
	if cmd.Flags().Changed("at") {
		at, _ := cmd.Flags().GetString("at")
		destIndex, err = cli.ParsePosition(at)
		if err != nil {
			return cli.Fail(formatter, err)
		}
	}

	res, err := svc.Reorder(ctx, boardID, boardservice.ReorderRequest{
		SourceColumn: from.ColumnID,
		SourceIndex:  from.Index,
		DestColumn:   dest,
		DestIndex:    destIndex,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return cli.ReportResult(formatter, res, fmt.Sprintf("✓ %s moved to '%s' position %d",
		subjectID, res.Board.Columns[dest].Title, destIndex+1))
}
