package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/render"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <board>",
		Short: "Show a board with its semesters",
		Long: `Display the semesters of a board side by side.

Subjects marked with "!" have a prerequisite that is missing from the board
or scheduled in a later semester.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Int("width", 0, "Render width (default: terminal width)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// boardView is the JSON shape of board show
type boardView struct {
	Board    *models.Board    `json:"board"`
	Credits  int              `json:"credits"`
	Warnings []models.Warning `json:"warnings"`
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	boardID, err := cli.ResolveBoard(ctx, cliInstance.App.BoardService, args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}

	overview, err := cliInstance.App.BoardService.Overview(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Println(overview.Board.ID)
		return nil
	}
	if formatter.JSON {
		warnings := overview.Warnings
		if warnings == nil {
			warnings = []models.Warning{}
		}
		return formatter.Success(boardView{
			Board:    overview.Board,
			Credits:  overview.Registry.Credits(curriculum.Placed(overview.Board)),
			Warnings: warnings,
		})
	}

	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = cli.TerminalWidth()
	}
	fmt.Println(render.Board(overview.Board, overview.Registry, overview.Warnings, width))
	return nil
}
