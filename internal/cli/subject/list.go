package subject

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/models"
)

// ListCmd returns the subject list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered subjects",
		Long: `List registered subjects ordered by ID.

With --unplaced=<board> only the subjects not yet placed on that board are
listed.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("unplaced", "", "Only subjects not placed on this board")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	unplacedOn, _ := cmd.Flags().GetString("unplaced")
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	var subjects []models.Subject
	if unplacedOn != "" {
		boardID, err := cli.ResolveBoard(ctx, cliInstance.App.BoardService, unplacedOn)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		overview, err := cliInstance.App.BoardService.Overview(ctx, boardID)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		subjects = curriculum.Unplaced(overview.Board, overview.Registry)
	} else {
		subjects, err = cliInstance.App.SubjectService.ListSubjects(ctx)
		if err != nil {
			return cli.Fail(formatter, err)
		}
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}

	if formatter.Quiet {
		for _, s := range subjects {
			fmt.Println(s.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(subjects)
	}

	if len(subjects) == 0 {
		fmt.Println("No subjects found")
		return nil
	}

	fmt.Printf("Found %d subject(s):\n\n", len(subjects))
	for _, s := range subjects {
		line := fmt.Sprintf("  %-10s %-36s %3d cr %4d h", s.ID, s.Name, s.Credits, s.Hours)
		if len(s.Prerequisites) > 0 {
			line += fmt.Sprintf("  requires %v", s.Prerequisites)
		}
		fmt.Println(line)
	}
	return nil
}
