package place

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	boardservice "github.com/thenoetrevino/syllabus/internal/services/board"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// AddCmd returns the place add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <board> <subject>...",
		Short: "Place subjects in a semester",
		Long: `Place one or more registered subjects in a semester, appending them
unless --at is given. Subjects already placed elsewhere on the board are
rejected; use 'syllabus place move' for those.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAdd,
	}

	cmd.Flags().String("column", "", "Semester ID, 1-based position or title (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("at", "", "1-based position inside the semester (default: end)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	columnRef, _ := cmd.Flags().GetString("column")
	formatter := cli.FormatterFromFlags(cmd)

	index := -1
	if cmd.Flags().Changed("at") {
		at, _ := cmd.Flags().GetString("at")
		parsed, err := cli.ParsePosition(at)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		index = parsed
	}

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.BoardService
	b, columnID, err := cli.ResolveBoardColumn(ctx, svc, args[0], columnRef)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	// Each subject is its own change; a failure keeps the ones before it
	var res *boardservice.Result
	for i, ref := range args[1:] {
		subjectID := types.SubjectID(ref)
		if index < 0 {
			res, err = svc.AddSubject(ctx, b.ID, columnID, subjectID)
		} else {
			res, err = svc.InsertSubject(ctx, b.ID, columnID, index+i, subjectID)
		}
		if err != nil {
			return cli.Fail(formatter, err)
		}
	}

	col := res.Board.Columns[columnID]
	return cli.ReportResult(formatter, res, fmt.Sprintf("✓ Placed %d subject(s) in '%s' (%d subjects)",
		len(args)-1, col.Title, len(col.SubjectIDs)))
}
