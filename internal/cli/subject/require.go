package subject

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// RequireCmd returns the subject require subcommand
func RequireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "require <id> [prerequisite]...",
		Short: "Set the prerequisites of a subject",
		Long: `Replace the prerequisite list of a subject. With no prerequisites the list
is cleared. A change that would make subjects require each other is
rejected.

Examples:
  syllabus subject require CS201 CS101 MATH101
  syllabus subject require CS201
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRequire,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRequire(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id := types.SubjectID(args[0])

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.SubjectService
	if err := svc.SetPrerequisites(ctx, id, toSubjectIDs(args[1:])); err != nil {
		return cli.Fail(formatter, err)
	}
	subj, err := svc.GetSubject(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Println(subj.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(subj)
	}
	if len(subj.Prerequisites) == 0 {
		fmt.Printf("✓ Subject '%s' has no prerequisites\n", subj.ID)
		return nil
	}
	fmt.Printf("✓ Subject '%s' requires %v\n", subj.ID, subj.Prerequisites)
	return nil
}
