package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// RemoveCmd returns the column remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <board> <semester>",
		Short: "Remove a semester from a board",
		Long:  "Remove a semester. Its subjects become unplaced and stay in the registry.",
		Args:  cobra.ExactArgs(2),
		RunE:  runRemove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.BoardService
	b, columnID, err := cli.ResolveBoardColumn(ctx, svc, args[0], args[1])
	if err != nil {
		return cli.Fail(formatter, err)
	}
	col := b.Columns[columnID]

	res, err := svc.RemoveColumn(ctx, b.ID, columnID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	message := fmt.Sprintf("✓ Semester '%s' removed", col.Title)
	if n := len(col.SubjectIDs); n > 0 {
		message += fmt.Sprintf(" (%d subjects unplaced)", n)
	}
	return cli.ReportResult(formatter, res, message)
}
