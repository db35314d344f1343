package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <board>",
		Short: "Append a semester to a board",
		Long:  `Append an empty semester. Without --title it is named "Semester N".`,
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}

	cmd.Flags().String("title", "", "Semester title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	title, _ := cmd.Flags().GetString("title")
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

	if !cmd.Flags().Changed("title") {
		b, err := svc.GetBoard(ctx, boardID)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		title = curriculum.SemesterTitle(len(b.ColumnOrder) + 1)
	}

	res, err := svc.AddColumn(ctx, boardID, title)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Println(res.ColumnID)
		return nil
	}
	col := res.Board.Columns[res.ColumnID]
	return cli.ReportResult(formatter, res, fmt.Sprintf("✓ Semester '%s' added at position %d (ID: %s)",
		col.Title, cli.ColumnPosition(res.Board, res.ColumnID), res.ColumnID))
}
