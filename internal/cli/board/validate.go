package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/render"
	boardservice "github.com/thenoetrevino/syllabus/internal/services/board"
)

// ValidateCmd returns the board validate subcommand
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <board>",
		Short: "Check the prerequisites of a board",
		Long: `List every prerequisite that is missing from the board or scheduled in a
later semester than the subject requiring it.

Warnings are advisory: the command succeeds unless --strict is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().Bool("strict", false, "Exit with a validation error when there are warnings")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	strict, _ := cmd.Flags().GetBool("strict")
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

	warnings, err := cliInstance.App.BoardService.Validate(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	if warnings == nil {
		warnings = []models.Warning{}
	}

	if strict && len(warnings) > 0 {
		if formatter.Human() {
			fmt.Println(render.Warnings(warnings))
		}
		return cli.Fail(formatter, &boardservice.WarningsError{Warnings: warnings})
	}

	switch {
	case formatter.Quiet:
		for _, w := range warnings {
			fmt.Println(render.WarningLine(w))
		}
	case formatter.JSON:
		return formatter.Success(map[string]any{
			"board_id": boardID,
			"valid":    len(warnings) == 0,
			"warnings": warnings,
		})
	case len(warnings) == 0:
		fmt.Println("✓ All prerequisites are scheduled in time")
	default:
		fmt.Println(render.Warnings(warnings))
	}
	return nil
}
