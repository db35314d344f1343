package place

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// RemoveCmd returns the place remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <board> <subject>",
		Short: "Take a subject off a board",
		Long:  "Take a subject out of its semester. The subject stays in the registry.",
		Args:  cobra.ExactArgs(2),
		RunE:  runRemove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	subjectID := types.SubjectID(args[1])

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

	at, placed := curriculum.Locate(b, subjectID)
	if !placed {
		return cli.Fail(formatter, &curriculum.MutationError{
			Op: "remove subject", Kind: curriculum.ErrUnknownSubject, SubjectID: subjectID,
		})
	}

	res, err := svc.RemoveSubject(ctx, boardID, at.ColumnID, subjectID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return cli.ReportResult(formatter, res, fmt.Sprintf("✓ %s removed from '%s'",
		subjectID, b.Columns[at.ColumnID].Title))
}
