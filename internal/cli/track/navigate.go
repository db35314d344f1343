package track

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/models"
	trackservice "github.com/thenoetrevino/syllabus/internal/services/track"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// NextCmd returns the track next subcommand
func NextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next <track>",
		Short: "Advance to the next step",
		Long:  "Advance to the next step. On the last step nothing changes.",
		Args:  cobra.ExactArgs(1),
		RunE:  runNext,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// PrevCmd returns the track prev subcommand
func PrevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prev <track>",
		Short: "Go back to the previous step",
		Long:  "Go back to the previous step. On the first step nothing changes.",
		Args:  cobra.ExactArgs(1),
		RunE:  runPrev,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// GoToCmd returns the track goto subcommand
func GoToCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goto <track> <step>",
		Short: "Jump to a step by its 1-based position",
		Long:  "Jump to a step. A position outside the track leaves it where it is.",
		Args:  cobra.ExactArgs(2),
		RunE:  runGoTo,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// move is one navigator transition applied through the track service
type move func(ctx context.Context, svc trackservice.Service, id types.TrackID) (*models.Track, bool, error)

func runNext(cmd *cobra.Command, args []string) error {
	return navigate(cmd, args[0], "Already at the last step",
		func(ctx context.Context, svc trackservice.Service, id types.TrackID) (*models.Track, bool, error) {
			return svc.Next(ctx, id)
		})
}

func runPrev(cmd *cobra.Command, args []string) error {
	return navigate(cmd, args[0], "Already at the first step",
		func(ctx context.Context, svc trackservice.Service, id types.TrackID) (*models.Track, bool, error) {
			return svc.Prev(ctx, id)
		})
}

func runGoTo(cmd *cobra.Command, args []string) error {
	index, err := cli.ParsePosition(args[1])
	if err != nil {
		return cli.Fail(cli.FormatterFromFlags(cmd), err)
	}
	return navigate(cmd, args[0], "No step at position "+args[1],
		func(ctx context.Context, svc trackservice.Service, id types.TrackID) (*models.Track, bool, error) {
			return svc.GoTo(ctx, id, index)
		})
}

func navigate(cmd *cobra.Command, ref, unchanged string, mv move) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.TrackService
	t, err := svc.FindTrack(ctx, ref)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	moved, changed, err := mv(ctx, svc, t.ID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return reportNavigation(formatter, moved, changed, unchanged)
}
