package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
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

	boards, err := cliInstance.App.BoardService.ListBoards(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		// Just print IDs (one per line)
		for _, b := range boards {
			fmt.Println(b.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(boards)
	}

	if len(boards) == 0 {
		fmt.Println("No boards found")
		return nil
	}

	fmt.Printf("Found %d board(s):\n\n", len(boards))
	for _, b := range boards {
		name := b.Name
		if b.Type != "" {
			name += " (" + b.Type + ")"
		}
		fmt.Printf("  %s  %s\n", b.ID, name)
		fmt.Printf("      %d semesters, %d subjects placed\n", b.ColumnCount, b.Placed)
	}
	return nil
}
