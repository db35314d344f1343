package track

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// CreateCmd returns the track create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a study track",
		Long: `Create a study track positioned at its first step.

Examples:
  syllabus track create --name="BSc Computer Science" --steps="Core,Electives,Thesis"
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Track name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("steps", "", "Comma-separated step names")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name, _ := cmd.Flags().GetString("name")
	steps, _ := cmd.Flags().GetString("steps")
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	t, err := cliInstance.App.TrackService.CreateTrack(ctx, name, cli.SplitList(steps))
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Println(t.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(t)
	}
	fmt.Printf("✓ Track '%s' created successfully (ID: %d)\n", t.Name, t.ID)
	printTrack(t)
	return nil
}
