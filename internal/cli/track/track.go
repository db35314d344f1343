// Package track holds all cli commands related to study tracks
//
// e.g., syllabus track ...
package track

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/models"
)

// TrackCmd returns the track parent command
func TrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Walk through the sections of a study track",
		Long: `A track is an ordered list of steps (e.g. Core, Electives, Thesis), each
planned on its own board. The track remembers the current step.

Tracks are referred to by ID or by name.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(NextCmd())
	cmd.AddCommand(PrevCmd())
	cmd.AddCommand(GoToCmd())
	cmd.AddCommand(BoardCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// navigation is the JSON shape of next, prev, goto and board
type navigation struct {
	Track   *models.Track `json:"track"`
	Changed bool          `json:"changed"`
}

func printTrack(t *models.Track) {
	fmt.Printf("Track '%s' (ID: %d)", t.Name, t.ID)
	if len(t.Steps) == 0 {
		fmt.Println(" has no steps")
		return
	}
	fmt.Printf(" step %d/%d\n", t.CurrentStep+1, len(t.Steps))
	for i, step := range t.Steps {
		marker := " "
		if i == t.CurrentStep {
			marker = "▸"
		}
		board := "(no board)"
		if step.BoardID != nil {
			board = "board " + string(*step.BoardID)
		}
		fmt.Printf("%s %d. %-20s %s\n", marker, i+1, step.Name, board)
	}
}

func reportNavigation(formatter *cli.OutputFormatter, t *models.Track, changed bool, unchanged string) error {
	if formatter.Quiet {
		fmt.Println(t.CurrentStep + 1)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(navigation{Track: t, Changed: changed})
	}
	if !changed {
		fmt.Println(unchanged)
	}
	printTrack(t)
	return nil
}
