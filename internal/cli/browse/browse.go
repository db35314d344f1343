// Package browse provides the command that opens the interactive track browser.
package browse

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/launcher"
)

// BrowseCmd returns the browse command
func BrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <track>",
		Short: "Browse the boards of a track interactively",
		Long: `Open a terminal UI over a track. Step through its sections with h/l
or the arrow keys, press n to create the board of a step that has none and
q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	t, err := cliInstance.App.TrackService.FindTrack(ctx, args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if err := launcher.Browse(ctx, cliInstance.App, t.ID); err != nil {
		return cli.Fail(formatter, err)
	}
	return nil
}
