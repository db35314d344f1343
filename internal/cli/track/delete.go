package track

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// DeleteCmd returns the track delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <track>",
		Short: "Delete a track",
		Long:  "Delete a track. The boards of its steps are kept.",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	if err := svc.DeleteTrack(ctx, t.ID); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"id": t.ID, "deleted": true})
	}
	fmt.Printf("✓ Track '%s' deleted\n", t.Name)
	return nil
}
