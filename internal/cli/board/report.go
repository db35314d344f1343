package board

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/render"
)

// ReportCmd returns the board report subcommand
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <board>",
		Short: "Print a curriculum report",
		Long: `Print a report with one table per semester, credit and hour totals, the
subjects not yet placed and the prerequisite warnings.

The report is Markdown rendered for the terminal; --raw prints the Markdown.`,
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}

	cmd.Flags().Bool("raw", false, "Print Markdown without terminal rendering")
	cmd.Flags().Int("width", 0, "Wrap width (default: terminal width)")
	cmd.Flags().StringP("output", "o", "", "Write the Markdown to a file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	raw, _ := cmd.Flags().GetBool("raw")
	width, _ := cmd.Flags().GetInt("width")
	outputPath, _ := cmd.Flags().GetString("output")
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

	md := render.Markdown(overview.Board, overview.Registry, overview.Warnings)

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(md), 0o644); err != nil {
			return cli.Fail(formatter, fmt.Errorf("failed to write report: %w", err))
		}
	}

	switch {
	case formatter.Quiet:
		return nil
	case formatter.JSON:
		return formatter.Success(map[string]any{"board_id": boardID, "markdown": md})
	case raw || outputPath != "":
		if outputPath == "" {
			fmt.Print(md)
		} else {
			fmt.Printf("✓ Report written to %s\n", outputPath)
		}
		return nil
	}

	if width <= 0 {
		width = cli.TerminalWidth()
	}
	out, err := render.RenderMarkdown(md, width)
	if err != nil {
		slog.Warn("failed to render report, printing markdown", "error", err)
	}
	fmt.Print(out)
	return nil
}
