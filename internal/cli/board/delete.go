package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board>",
		Short: "Delete a board",
		Long:  "Delete a board with all its placements (requires confirmation unless --force or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
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

	b, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && formatter.Human() {
		fmt.Printf("Delete board '%s' with %d placed subjects? (y/N): ", b.Name, b.SubjectCount())
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			response = ""
		}
		if !strings.EqualFold(strings.TrimSpace(response), "y") {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.BoardService.DeleteBoard(ctx, boardID); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"id": boardID, "deleted": true})
	}

	fmt.Printf("✓ Board '%s' deleted successfully\n", b.Name)
	return nil
}
