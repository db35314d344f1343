package column

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <board> <semester>",
		Short: "Rename a semester",
		Args:  cobra.ExactArgs(2),
		RunE:  runRename,
	}

	cmd.Flags().String("title", "", "New title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	title, _ := cmd.Flags().GetString("title")
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
	oldTitle := b.Columns[columnID].Title

	res, err := svc.RenameColumn(ctx, b.ID, columnID, title)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return cli.ReportResult(formatter, res, fmt.Sprintf("✓ Semester '%s' renamed to '%s'",
		oldTitle, res.Board.Columns[columnID].Title))
}
