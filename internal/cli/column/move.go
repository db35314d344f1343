package column

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <board> <semester>",
		Short: "Move a semester to another position",
		Args:  cobra.ExactArgs(2),
		RunE:  runMove,
	}

	cmd.Flags().String("to", "", "New 1-based position (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	to, _ := cmd.Flags().GetString("to")
	formatter := cli.FormatterFromFlags(cmd)

	toIndex, err := cli.ParsePosition(to)
	if err != nil {
		return cli.Fail(formatter, err)
	}

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
	fromIndex := cli.ColumnPosition(b, columnID) - 1

	res, err := svc.MoveColumn(ctx, b.ID, fromIndex, toIndex)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return cli.ReportResult(formatter, res, fmt.Sprintf("✓ Semester '%s' moved to position %d",
		b.Columns[columnID].Title, toIndex+1))
}
