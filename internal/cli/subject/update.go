package subject

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// UpdateCmd returns the subject update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the name, credits or hours of a subject",
		Long:  "Change a subject. Only the given flags are applied; prerequisites are changed with 'subject require'.",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().Int("credits", 0, "New credit points")
	cmd.Flags().Int("hours", 0, "New contact hours")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("credits") && !cmd.Flags().Changed("hours") {
		return cli.Usagef(formatter, "Pass --name, --credits or --hours", "nothing to update")
	}

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.SubjectService
	subj, err := svc.GetSubject(ctx, types.SubjectID(args[0]))
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if cmd.Flags().Changed("name") {
		subj.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("credits") {
		subj.Credits, _ = cmd.Flags().GetInt("credits")
	}
	if cmd.Flags().Changed("hours") {
		subj.Hours, _ = cmd.Flags().GetInt("hours")
	}

	updated, err := svc.UpdateSubject(ctx, *subj)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Println(updated.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(updated)
	}
	fmt.Printf("✓ Subject '%s' updated\n", updated.ID)
	printSubject(updated)
	return nil
}
