package track

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// ListCmd returns the track list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List study tracks",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	tracks, err := cliInstance.App.TrackService.ListTracks(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, t := range tracks {
			fmt.Println(t.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(tracks)
	}

	if len(tracks) == 0 {
		fmt.Println("No tracks found")
		return nil
	}
	fmt.Printf("Found %d track(s):\n\n", len(tracks))
	for _, t := range tracks {
		fmt.Printf("  %d  %s\n", t.ID, t.Name)
	}
	return nil
}
