package subject

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// CreateCmd returns the subject create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new subject",
		Long: `Register a new subject.

Examples:
  syllabus subject create --id=CS101 --name="Programming I" --credits=6 --hours=96
  syllabus subject create --id=CS201 --name="Data Structures" --credits=6 --requires=CS101
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("id", "", "Subject code, e.g. CS101 (required)")
	cmd.Flags().String("name", "", "Subject name (required)")
	for _, name := range []string{"id", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().Int("credits", 0, "Credit points")
	cmd.Flags().Int("hours", 0, "Contact hours")
	cmd.Flags().String("requires", "", "Comma-separated prerequisite subject IDs")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")
	credits, _ := cmd.Flags().GetInt("credits")
	hours, _ := cmd.Flags().GetInt("hours")
	requires, _ := cmd.Flags().GetString("requires")
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	subj, err := cliInstance.App.SubjectService.CreateSubject(ctx, models.Subject{
		ID:            types.SubjectID(id),
		Name:          name,
		Credits:       credits,
		Hours:         hours,
		Prerequisites: toSubjectIDs(cli.SplitList(requires)),
	})
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

	fmt.Printf("✓ Subject '%s' registered\n", subj.ID)
	printSubject(subj)
	return nil
}
