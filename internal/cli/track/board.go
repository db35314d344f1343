package track

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// BoardCmd returns the track board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board <track>",
		Short: "Print the board of the current step, creating it if needed",
		Long: `Print the ID of the board planned for the current step. A step without a
board gets a new one named "<track>: <step>".

Examples:
  syllabus place add "$(syllabus track board "BSc CS" --quiet)" CS101 --column=1
`,
		Args: cobra.ExactArgs(1),
		RunE: runBoard,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.TrackService
	t, err := svc.FindTrack(ctx, args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}

	t, created, err := svc.EnsureBoard(ctx, t.ID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	boardID := *t.Steps[t.CurrentStep].BoardID

	if formatter.Quiet {
		fmt.Println(boardID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(navigation{Track: t, Changed: created})
	}
	if created {
		fmt.Printf("✓ Board created for step '%s' (ID: %s)\n", t.Steps[t.CurrentStep].Name, boardID)
	} else {
		fmt.Printf("Step '%s' uses board %s\n", t.Steps[t.CurrentStep].Name, boardID)
	}
	return nil
}
